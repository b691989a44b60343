package postoffice

import "reflect"

// Mail is implemented by unverified letters: they may be posted with or
// without a sender. Letter types opt in by embedding Unmarked.
//
//	type Ping struct {
//		postoffice.Unmarked
//		Value int
//	}
type Mail interface {
	unmarked()
}

// Unmarked is embedded into a letter type to make it Mail.
type Unmarked struct{}

func (Unmarked) unmarked() {}

// Postmarked is implemented by verified letters which must always be posted
// together with a sender of type S. The only way to post them is PostMarked,
// whose signature does not accept a missing sender.
//
//	type Committed struct {
//		postoffice.Postmark[*Editor]
//		Revision int
//	}
type Postmarked[S any] interface {
	postmark(S)
	verified
}

// Postmark is embedded into a letter type to make it Postmarked by S.
type Postmark[S any] struct{}

func (Postmark[S]) postmark(S) {}

func (Postmark[S]) requiresSender() {}

// verified is satisfied by every Postmarked letter regardless of its sender
// type. It lets registration detect verified letters without knowing S.
type verified interface {
	requiresSender()
}

var verifiedType = reflect.TypeFor[verified]()

func isVerified[M any]() bool {
	return reflect.TypeFor[M]().Implements(verifiedType)
}
