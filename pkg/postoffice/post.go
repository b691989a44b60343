package postoffice

import "context"

// Post delivers an unverified letter without a sender. Only recipients that
// are not filtered by sender and do not require one receive it.
func (p *PostOffice) Post(letter Mail) {
	p.post(context.Background(), letter, nil)
}

// PostFrom delivers an unverified letter on behalf of sender. A nil sender is
// the same as Post.
//
// Sender filters match by ==, so senders should be pointers. Sender filters
// set with WithSender are always pointers, so a non-comparable sender such as
// a slice or map never matches a filter and never panics.
func (p *PostOffice) PostFrom(letter Mail, sender any) {
	p.post(context.Background(), letter, sender)
}

// PostContext is Post with ctx attached to the diagnostics logged while
// delivering, so context extractors of the logger apply.
func (p *PostOffice) PostContext(ctx context.Context, letter Mail) {
	p.post(ctx, letter, nil)
}

// PostFromContext is PostFrom with ctx attached to diagnostics.
func (p *PostOffice) PostFromContext(ctx context.Context, letter Mail, sender any) {
	p.post(ctx, letter, sender)
}

// PostMarked delivers a verified letter. The sender is mandatory and must be
// of the type the letter declares through Postmark:
//
//	postoffice.PostMarked(po, Committed{Revision: 3}, editor)
func PostMarked[M Postmarked[S], S any](p *PostOffice, letter M, sender S) {
	p.post(context.Background(), letter, sender)
}
