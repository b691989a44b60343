package executor

import (
	"context"
	"sync"

	"github.com/dmitrymomot/ponyexpress/pkg/logger"
)

// Serial runs work one item at a time, in submission order, on a single
// background goroutine. The queue is unbounded, so Submit never blocks and
// may be called from inside running work.
type Serial struct {
	base

	mu      sync.Mutex
	cond    *sync.Cond
	pending []func()
	closed  bool
	done    chan struct{}
}

// NewSerial creates a Serial executor and starts its worker goroutine.
// Close must be called to stop it.
func NewSerial(opts ...Option) *Serial {
	o := applyOptions(opts)
	s := &Serial{
		base:    newBase("serial", o),
		pending: make([]func(), 0, o.bufferSize),
		done:    make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.loop()
	return s
}

// Submit enqueues work. Work submitted after Close is dropped.
func (s *Serial) Submit(work func()) {
	if work == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.dropped("closed")
		return
	}
	s.pending = append(s.pending, work)
	s.mu.Unlock()
	s.cond.Signal()
}

// Len returns the number of queued work items not yet started.
func (s *Serial) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close stops accepting work, lets the worker drain the queue and waits for
// it to finish or for ctx to expire.
func (s *Serial) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.closed = true
	s.mu.Unlock()
	s.cond.Broadcast()

	s.logger.DebugContext(ctx, "executor closing", logger.Count(s.Len()))
	return waitDone(ctx, s.done)
}

func (s *Serial) loop() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.pending) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.pending) == 0 {
			s.mu.Unlock()
			return
		}
		work := s.pending[0]
		s.pending[0] = nil
		s.pending = s.pending[1:]
		s.mu.Unlock()

		s.run(work)
	}
}
