package postoffice

import (
	"weak"

	"github.com/dmitrymomot/ponyexpress/pkg/logger"
)

// Register adds a block that receives every letter of type M, regardless of
// the sender (including none).
//
//	postoffice.Register(po, func(p Ping) { ... })
func Register[M any](p *PostOffice, fn func(M), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if fn == nil {
		return p.decline(key, shapeBlock, "nil handler")
	}
	return p.register(key, shapeBlock, blockFunc(fn), nil, opts)
}

// RegisterSender adds a block that receives letters of type M posted by a
// sender of type S. Letters posted without a sender, or by a sender of another
// type, are not delivered.
func RegisterSender[M, S any](p *PostOffice, fn func(M, S), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if fn == nil {
		return p.decline(key, shapeBlockSender, "nil handler")
	}
	return p.register(key, shapeBlockSender, blockSenderFunc(fn), nil, opts)
}

// RegisterOptionalSender adds a block that receives letters of type M from
// any sender. When the letter was posted without a sender, or the sender is
// not an S, fn receives the zero value of S.
//
// Registering an optional sender for a Postmarked letter is allowed but
// discouraged, since such letters always carry a sender; a warning is logged.
func RegisterOptionalSender[M, S any](p *PostOffice, fn func(M, S), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if fn == nil {
		return p.decline(key, shapeBlockOptionalSender, "nil handler")
	}
	p.warnOptionalSender(key, isVerified[M]())
	return p.register(key, shapeBlockOptionalSender, blockOptionalSenderFunc(fn), nil, opts)
}

// RegisterMethod adds a method of owner that receives every letter of type M.
// Pass a method expression, not a method value:
//
//	postoffice.RegisterMethod(po, screen, (*Screen).OnPing)
//
// The owner is held weakly. Once it is garbage collected the method stops
// firing and the registration is pruned on the next post of M. Owners of
// zero-sized types never expire.
func RegisterMethod[R, M any](p *PostOffice, owner *R, fn func(*R, M), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if owner == nil || fn == nil {
		return p.decline(key, shapeMethod, "nil owner or method")
	}
	w := weak.Make(owner)
	return p.register(key, shapeMethod, methodFunc(w, fn), weakRefFrom(w), opts)
}

// RegisterMethodSender is RegisterMethod for methods that require a sender of
// type S.
func RegisterMethodSender[R, M, S any](p *PostOffice, owner *R, fn func(*R, M, S), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if owner == nil || fn == nil {
		return p.decline(key, shapeMethodSender, "nil owner or method")
	}
	w := weak.Make(owner)
	return p.register(key, shapeMethodSender, methodSenderFunc(w, fn), weakRefFrom(w), opts)
}

// RegisterMethodOptionalSender is RegisterMethod for methods taking an
// optional sender of type S; see RegisterOptionalSender.
func RegisterMethodOptionalSender[R, M, S any](p *PostOffice, owner *R, fn func(*R, M, S), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if owner == nil || fn == nil {
		return p.decline(key, shapeMethodOptionalSender, "nil owner or method")
	}
	p.warnOptionalSender(key, isVerified[M]())
	w := weak.Make(owner)
	return p.register(key, shapeMethodOptionalSender, methodOptionalSenderFunc(w, fn), weakRefFrom(w), opts)
}

// RegisterSignal adds a method of owner that is called without arguments
// whenever a letter of type M is posted. M must be given explicitly:
//
//	postoffice.RegisterSignal[Refresh](po, view, (*View).Reload)
func RegisterSignal[M, R any](p *PostOffice, owner *R, fn func(*R), opts ...RegisterOption) RecipientID {
	key := KeyFor[M]()
	if owner == nil || fn == nil {
		return p.decline(key, shapeSignal, "nil owner or method")
	}
	w := weak.Make(owner)
	return p.register(key, shapeSignal, signalFunc[M](w, fn), weakRefFrom(w), opts)
}

func (p *PostOffice) warnOptionalSender(key TypeKey, verified bool) {
	if !verified {
		return
	}
	p.logger.Warn("optional sender registered for postmarked letter",
		logger.LetterType(key.Name()),
	)
}
