package executor

import (
	"context"
	"sync"
	"sync/atomic"
)

// Channel hands work to a caller-owned loop through Work. It never blocks the
// submitter: when the buffer is full the work is dropped and logged.
//
//	ui := executor.NewChannel(executor.WithBufferSize(128))
//	go ui.Run(ctx)
type Channel struct {
	base

	work  chan func()
	drops atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// NewChannel creates a Channel executor with a buffer of WithBufferSize.
func NewChannel(opts ...Option) *Channel {
	o := applyOptions(opts)
	return &Channel{
		base: newBase("channel", o),
		work: make(chan func(), o.bufferSize),
	}
}

// Work returns the channel to receive work from. It is closed by Close.
func (c *Channel) Work() <-chan func() { return c.work }

// Dropped returns how many work items were discarded so far.
func (c *Channel) Dropped() uint64 { return c.drops.Load() }

// Submit enqueues work without blocking.
func (c *Channel) Submit(work func()) {
	if work == nil {
		return
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		c.drop("closed")
		return
	}
	select {
	case c.work <- work:
	default:
		c.drop("buffer full")
	}
}

// Drain runs every queued work item in the calling goroutine without
// waiting for more and returns how many ran.
func (c *Channel) Drain() int {
	var n int
	for {
		select {
		case work, ok := <-c.work:
			if !ok {
				return n
			}
			c.run(work)
			n++
		default:
			return n
		}
	}
}

// Run executes work until ctx is done or the channel is closed. Panics are
// logged with ctx.
func (c *Channel) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case work, ok := <-c.work:
			if !ok {
				return nil
			}
			c.runContext(ctx, work)
		}
	}
}

// Close closes the work channel. Already queued work can still be received.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.closed = true
	close(c.work)
	return nil
}

func (c *Channel) drop(reason string) {
	c.drops.Add(1)
	c.base.dropped(reason)
}
