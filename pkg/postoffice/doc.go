// Package postoffice provides an in-process, strongly typed publish/subscribe
// registry.
//
// Senders post letters, which are ordinary Go values. Recipients register
// handlers for the letter types they care about, optionally restricted to a
// particular sender. The PostOffice inspects the dynamic type of every posted
// letter and relays it to the matching recipients.
//
// # Letters
//
// Unverified letters embed Unmarked and may be posted with or without a
// sender:
//
//	type Ping struct {
//		postoffice.Unmarked
//		Value int
//	}
//
//	po.Post(Ping{Value: 5})
//	po.PostFrom(Ping{Value: 6}, sender)
//
// Verified letters embed Postmark[S] and can only be posted with a sender of
// type S through PostMarked:
//
//	type Committed struct {
//		postoffice.Postmark[*Editor]
//		Revision int
//	}
//
//	postoffice.PostMarked(po, Committed{Revision: 2}, editor)
//
// # Recipients
//
// Blocks and methods are registered through generic functions. Each returns a
// RecipientID that can later be passed to Unregister.
//
//	postoffice.Register(po, func(p Ping) { ... })
//	postoffice.RegisterSender(po, func(p Ping, s *Sensor) { ... })
//	postoffice.RegisterMethod(po, screen, (*Screen).OnPing)
//
// Methods are registered as method expressions together with their owner. The
// owner is held through a weak pointer: it is never kept alive by the
// PostOffice, and once collected its registrations stop firing and are pruned
// the next time a letter of their type is posted. Sender filters set with
// WithSender are held weakly as well.
//
// A recipient registered for an interface type receives every letter whose
// dynamic type implements that interface. A recipient registered for a
// concrete type receives only letters of exactly that type.
//
// # Delivery
//
// Post takes a snapshot of the matching recipients under the registry lock and
// delivers after releasing it, in registration order. Handlers may therefore
// register, unregister or post from inside a delivery. Recipients registered
// with WithExecutor are handed to their Executor; all others run in the
// posting goroutine.
//
// Type mismatches and expired references are expected conditions and are
// never reported as errors: the recipient is simply not called.
//
// # Default instance
//
// Default returns a process-wide PostOffice configured from the environment
// (see Config). Independent instances are created with New, and Branch wraps
// a private PostOffice narrowed to a single letter and sender type.
package postoffice
