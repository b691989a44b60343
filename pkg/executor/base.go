package executor

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/ponyexpress/pkg/logger"
)

// base carries the identity and logger shared by every executor.
type base struct {
	id     uuid.UUID
	logger *slog.Logger
}

func newBase(kind string, o options) base {
	id := uuid.New()
	return base{
		id: id,
		logger: o.logger.With(
			logger.Component("executor"),
			logger.ExecutorID(id),
			slog.String("kind", kind),
		),
	}
}

// ID returns the unique id of the executor.
func (b *base) ID() uuid.UUID { return b.id }

// run executes work and logs a panic instead of crashing the worker.
func (b *base) run(work func()) {
	b.runContext(context.Background(), work)
}

// runContext is run with the panic logged against ctx, so context
// extractors such as environment.LoggerExtractor apply.
func (b *base) runContext(ctx context.Context, work func()) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "work panicked", logger.Panic(r))
		}
	}()
	work()
}

func (b *base) dropped(reason string) {
	b.logger.Warn("work dropped", slog.String("reason", reason))
}

// wait blocks until wg is done or ctx expires.
func wait(ctx context.Context, wg *sync.WaitGroup) error {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return waitDone(ctx, done)
}

func waitDone(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(ErrShutdownTimeout, ctx.Err())
	}
}
