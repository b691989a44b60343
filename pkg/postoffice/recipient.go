package postoffice

import "weak"

// Executor runs delivery work, possibly asynchronously and possibly on
// another goroutine. Ordering of submitted work is the executor's contract.
type Executor interface {
	Submit(work func())
}

// ExecutorFunc adapts a plain function to Executor.
type ExecutorFunc func(work func())

// Submit calls f(work).
func (f ExecutorFunc) Submit(work func()) { f(work) }

// shape tags the handler signature a recipient was registered with.
type shape uint8

const (
	shapeBlock shape = iota
	shapeBlockSender
	shapeBlockOptionalSender
	shapeMethod
	shapeMethodSender
	shapeMethodOptionalSender
	shapeSignal
)

func (s shape) String() string {
	switch s {
	case shapeBlock:
		return "block"
	case shapeBlockSender:
		return "block_sender"
	case shapeBlockOptionalSender:
		return "block_optional_sender"
	case shapeMethod:
		return "method"
	case shapeMethodSender:
		return "method_sender"
	case shapeMethodOptionalSender:
		return "method_optional_sender"
	case shapeSignal:
		return "signal"
	default:
		return "unknown"
	}
}

// weakRef is a non-owning reference to an object of any type.
type weakRef struct {
	resolve func() (any, bool)
}

func weakRefOf[T any](p *T) *weakRef {
	if p == nil {
		return nil
	}
	return weakRefFrom(weak.Make(p))
}

func weakRefFrom[T any](w weak.Pointer[T]) *weakRef {
	return &weakRef{
		resolve: func() (any, bool) {
			v := w.Value()
			if v == nil {
				return nil, false
			}
			return v, true
		},
	}
}

func (w *weakRef) alive() bool {
	_, ok := w.resolve()
	return ok
}

// recipient is the type-erased record kept by a PostOffice for every
// registration.
type recipient struct {
	id      RecipientID
	key     TypeKey
	shape   shape
	deliver func(letter, sender any)
	owner   *weakRef // nil for blocks
	sender  *weakRef // nil when not filtered by sender
	exec    Executor // nil delivers in the posting goroutine
}

// collectible reports whether the recipient can never fire again: its owner
// or its sender filter has been garbage collected.
func (r *recipient) collectible() bool {
	if r.owner != nil && !r.owner.alive() {
		return true
	}
	return r.sender != nil && !r.sender.alive()
}

// accepts applies the sender filter. An expired filter never matches.
func (r *recipient) accepts(sender any) bool {
	if r.sender == nil {
		return true
	}
	filter, ok := r.sender.resolve()
	return ok && filter == sender
}

func (r *recipient) ownedBy(obj any) bool {
	if r.owner == nil || obj == nil {
		return false
	}
	owner, ok := r.owner.resolve()
	return ok && owner == obj
}

func (r *recipient) dispatch(letter, sender any) {
	if r.exec == nil {
		r.deliver(letter, sender)
		return
	}
	r.exec.Submit(func() { r.deliver(letter, sender) })
}

// The constructors below never capture a strong reference to a method owner;
// the owner is reached only through its weak pointer at delivery time.

func blockFunc[M any](fn func(M)) func(any, any) {
	return func(letter, _ any) {
		if m, ok := letter.(M); ok {
			fn(m)
		}
	}
}

func blockSenderFunc[M, S any](fn func(M, S)) func(any, any) {
	return func(letter, sender any) {
		m, ok := letter.(M)
		if !ok {
			return
		}
		s, ok := sender.(S)
		if !ok {
			return
		}
		fn(m, s)
	}
}

func blockOptionalSenderFunc[M, S any](fn func(M, S)) func(any, any) {
	return func(letter, sender any) {
		m, ok := letter.(M)
		if !ok {
			return
		}
		s, _ := sender.(S)
		fn(m, s)
	}
}

func methodFunc[R, M any](owner weak.Pointer[R], fn func(*R, M)) func(any, any) {
	return func(letter, _ any) {
		r := owner.Value()
		if r == nil {
			return
		}
		if m, ok := letter.(M); ok {
			fn(r, m)
		}
	}
}

func methodSenderFunc[R, M, S any](owner weak.Pointer[R], fn func(*R, M, S)) func(any, any) {
	return func(letter, sender any) {
		r := owner.Value()
		if r == nil {
			return
		}
		m, ok := letter.(M)
		if !ok {
			return
		}
		s, ok := sender.(S)
		if !ok {
			return
		}
		fn(r, m, s)
	}
}

func methodOptionalSenderFunc[R, M, S any](owner weak.Pointer[R], fn func(*R, M, S)) func(any, any) {
	return func(letter, sender any) {
		r := owner.Value()
		if r == nil {
			return
		}
		m, ok := letter.(M)
		if !ok {
			return
		}
		s, _ := sender.(S)
		fn(r, m, s)
	}
}

func signalFunc[M, R any](owner weak.Pointer[R], fn func(*R)) func(any, any) {
	return func(letter, _ any) {
		r := owner.Value()
		if r == nil {
			return
		}
		if _, ok := letter.(M); ok {
			fn(r)
		}
	}
}
