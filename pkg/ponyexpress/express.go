package ponyexpress

import (
	"log/slog"
	"sync"
	"weak"

	"github.com/google/uuid"

	"github.com/dmitrymomot/ponyexpress/pkg/logger"
	"github.com/dmitrymomot/ponyexpress/pkg/postoffice"
)

// Express routes letters with contents of type C to observers registered
// under the letter's name.
type Express[C any] struct {
	id     uuid.UUID
	logger *slog.Logger

	mu        sync.Mutex
	observers map[string][]*observer[C]
}

type observer[C any] struct {
	deliver func(Letter[C])
	alive   func() bool // nil for blocks
	queue   postoffice.Executor
}

func (o *observer[C]) collectible() bool {
	return o.alive != nil && !o.alive()
}

// New creates an empty Express.
func New[C any](opts ...Option) *Express[C] {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	id := uuid.New()
	return &Express[C]{
		id:        id,
		logger:    s.logger.With(logger.Component("ponyexpress"), slog.String("express_id", id.String())),
		observers: make(map[string][]*observer[C]),
	}
}

// ID returns the unique id of this Express.
func (x *Express[C]) ID() uuid.UUID { return x.id }

// Add registers fn for letters posted under name. A nil fn is ignored.
func (x *Express[C]) Add(name string, fn func(Letter[C]), opts ...AddOption) {
	if fn == nil {
		x.logger.Warn("observer declined", slog.String("name", name), slog.String("reason", "nil handler"))
		return
	}
	x.add(name, &observer[C]{deliver: fn}, opts)
}

// AddRecipient registers r for letters posted under name. The recipient is
// held weakly and is dropped once it has been garbage collected.
func AddRecipient[C any, R any, P interface {
	*R
	Recipient[C]
}](x *Express[C], name string, r P, opts ...AddOption) {
	if r == nil {
		x.logger.Warn("observer declined", slog.String("name", name), slog.String("reason", "nil recipient"))
		return
	}
	w := weak.Make((*R)(r))
	x.add(name, &observer[C]{
		deliver: func(letter Letter[C]) {
			if strong := w.Value(); strong != nil {
				P(strong).Receive(letter)
			}
		},
		alive: func() bool { return w.Value() != nil },
	}, opts)
}

func (x *Express[C]) add(name string, o *observer[C], opts []AddOption) {
	var oo observerOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&oo)
		}
	}
	o.queue = oo.queue

	x.mu.Lock()
	current := x.observers[name]
	next := make([]*observer[C], len(current), len(current)+1)
	copy(next, current)
	x.observers[name] = append(next, o)
	x.mu.Unlock()

	x.logger.Debug("observer added", slog.String("name", name), slog.Bool("weak", o.alive != nil))
}

// Post delivers a letter to every observer of name, in the order they were
// added. Observers without a queue run in the calling goroutine.
func (x *Express[C]) Post(name string, sender any, contents C) {
	x.mu.Lock()
	current := x.observers[name]
	toNotify := make([]*observer[C], 0, len(current))
	for _, o := range current {
		if !o.collectible() {
			toNotify = append(toNotify, o)
		}
	}
	if pruned := len(current) - len(toNotify); pruned > 0 {
		if len(toNotify) == 0 {
			delete(x.observers, name)
		} else {
			x.observers[name] = toNotify
		}
		x.logger.Debug("expired observers pruned", slog.String("name", name), logger.Count(pruned))
	}
	x.mu.Unlock()

	letter := Letter[C]{Name: name, Sender: sender, Contents: contents}
	for _, o := range toNotify {
		if o.queue == nil {
			o.deliver(letter)
			continue
		}
		o.queue.Submit(func() { o.deliver(letter) })
	}
}

// Remove drops every observer of name.
func (x *Express[C]) Remove(name string) {
	x.mu.Lock()
	n := len(x.observers[name])
	delete(x.observers, name)
	x.mu.Unlock()

	if n > 0 {
		x.logger.Debug("observers removed", slog.String("name", name), logger.Count(n))
	}
}

// Count returns the number of observers across all names.
func (x *Express[C]) Count() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	var n int
	for _, list := range x.observers {
		n += len(list)
	}
	return n
}
