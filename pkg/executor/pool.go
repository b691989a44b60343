package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool runs work concurrently on at most Limit goroutines.
//
// Submit never blocks: when every worker is busy the work is queued and
// picked up by the next worker that finishes, so work running on the pool
// may submit back into it.
type Pool struct {
	base

	group *errgroup.Group
	limit int

	mu       sync.Mutex
	running  int
	pending  []func()
	inflight sync.WaitGroup
	closed   bool
}

// NewPool creates a Pool bounded by WithLimit (GOMAXPROCS by default).
func NewPool(opts ...Option) *Pool {
	o := applyOptions(opts)
	return &Pool{
		base:  newBase("pool", o),
		group: new(errgroup.Group),
		limit: o.limit,
	}
}

// Limit returns the concurrency bound.
func (p *Pool) Limit() int { return p.limit }

// Pending returns the number of queued work items waiting for a worker.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Submit runs work on a free worker or queues it. Work submitted after Close
// is dropped.
func (p *Pool) Submit(work func()) {
	if work == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.dropped("closed")
		return
	}
	p.inflight.Add(1)
	if p.running >= p.limit {
		p.pending = append(p.pending, work)
		return
	}
	p.running++
	p.group.Go(p.worker(work))
}

// worker runs first, then keeps draining the pending queue until it is
// empty. The slot is released under p.mu so no queued work is stranded.
func (p *Pool) worker(first func()) func() error {
	return func() error {
		work := first
		for {
			p.run(work)
			p.inflight.Done()

			p.mu.Lock()
			if len(p.pending) == 0 {
				p.running--
				p.mu.Unlock()
				return nil
			}
			work = p.pending[0]
			p.pending[0] = nil
			p.pending = p.pending[1:]
			p.mu.Unlock()
		}
	}
}

// Close stops accepting work and waits for queued and running work or ctx.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.closed = true
	p.mu.Unlock()

	p.logger.DebugContext(ctx, "executor closing")
	if err := wait(ctx, &p.inflight); err != nil {
		return err
	}
	return p.group.Wait()
}
