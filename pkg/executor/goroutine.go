package executor

import (
	"context"
	"sync"
)

// Goroutine runs every work item on its own goroutine.
type Goroutine struct {
	base

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// NewGoroutine creates a Goroutine executor.
func NewGoroutine(opts ...Option) *Goroutine {
	return &Goroutine{base: newBase("goroutine", applyOptions(opts))}
}

// Submit starts work on a new goroutine. Work submitted after Close is
// dropped.
func (g *Goroutine) Submit(work func()) {
	if work == nil {
		return
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		g.dropped("closed")
		return
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		g.run(work)
	}()
}

// Close stops accepting work and waits for running work or ctx.
func (g *Goroutine) Close(ctx context.Context) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	g.closed = true
	g.mu.Unlock()

	g.logger.DebugContext(ctx, "executor closing")
	return wait(ctx, &g.wg)
}
