package postoffice

import "context"

// Branch is a PostOffice narrowed to letters of type M and senders of type *S.
//
// While recipients of a PostOffice are strictly typed, posted letters and
// senders are not. A Branch constrains both at compile time so a wrong letter
// or sender cannot be posted by mistake. Each Branch owns its own PostOffice
// and adds no dispatch logic of its own.
//
//	events := postoffice.NewBranch[DocumentEvent, Editor]()
//	events.Register(func(e DocumentEvent) { ... })
//	events.PostFrom(Saved{}, editor)
type Branch[M any, S any] struct {
	office *PostOffice
}

// NewBranch creates a Branch backed by a fresh PostOffice.
func NewBranch[M any, S any](opts ...Option) *Branch[M, S] {
	return &Branch[M, S]{office: New(opts...)}
}

// From returns a sender filter typed to the branch's sender.
func (b *Branch[M, S]) From(sender *S) RegisterOption {
	return WithSender(sender)
}

// Register adds a block receiving every letter of the branch.
func (b *Branch[M, S]) Register(fn func(M), opts ...RegisterOption) RecipientID {
	return Register(b.office, fn, opts...)
}

// RegisterSender adds a block that requires a sender.
func (b *Branch[M, S]) RegisterSender(fn func(M, *S), opts ...RegisterOption) RecipientID {
	return RegisterSender(b.office, fn, opts...)
}

// RegisterOptionalSender adds a block whose sender is nil when the letter was
// posted without one.
func (b *Branch[M, S]) RegisterOptionalSender(fn func(M, *S), opts ...RegisterOption) RecipientID {
	return RegisterOptionalSender(b.office, fn, opts...)
}

// Post delivers letter without a sender.
func (b *Branch[M, S]) Post(letter M) {
	b.office.post(context.Background(), letter, nil)
}

// PostFrom delivers letter on behalf of sender. A nil sender is the same as
// Post.
func (b *Branch[M, S]) PostFrom(letter M, sender *S) {
	if sender == nil {
		b.office.post(context.Background(), letter, nil)
		return
	}
	b.office.post(context.Background(), letter, sender)
}

// Unregister stops deliveries to the recipient registered under id.
func (b *Branch[M, S]) Unregister(id RecipientID) {
	b.office.Unregister(id)
}

// UnregisterRecipient removes every method registration owned by owner.
func (b *Branch[M, S]) UnregisterRecipient(owner any) {
	b.office.UnregisterRecipient(owner)
}

// Count returns the number of registered recipients.
func (b *Branch[M, S]) Count() int {
	return b.office.Count()
}

// BranchMethod adds a weakly held method receiving every letter of the branch.
func BranchMethod[R, M, S any](b *Branch[M, S], owner *R, fn func(*R, M), opts ...RegisterOption) RecipientID {
	return RegisterMethod(b.office, owner, fn, opts...)
}

// BranchMethodSender adds a weakly held method that requires a sender.
func BranchMethodSender[R, M, S any](b *Branch[M, S], owner *R, fn func(*R, M, *S), opts ...RegisterOption) RecipientID {
	return RegisterMethodSender(b.office, owner, fn, opts...)
}

// BranchMethodOptionalSender adds a weakly held method whose sender is nil
// when the letter was posted without one.
func BranchMethodOptionalSender[R, M, S any](b *Branch[M, S], owner *R, fn func(*R, M, *S), opts ...RegisterOption) RecipientID {
	return RegisterMethodOptionalSender(b.office, owner, fn, opts...)
}
