package postoffice

import "log/slog"

// Option configures a PostOffice.
type Option func(*PostOffice)

// WithLogger sets the logger used for registry diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *PostOffice) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithName labels the post office in logs. Empty names are ignored.
func WithName(name string) Option {
	return func(p *PostOffice) {
		if name != "" {
			p.name = name
		}
	}
}

// RegisterOption configures a single registration.
type RegisterOption func(*registration)

type registration struct {
	sender *weakRef
	exec   Executor
}

// WithSender limits deliveries to letters posted by exactly this sender
// (pointer identity). The sender is held weakly: once it is garbage collected
// the registration stops firing and is pruned on the next post of its letter
// type. A nil sender means no filter.
func WithSender[T any](sender *T) RegisterOption {
	return func(r *registration) {
		r.sender = weakRefOf(sender)
	}
}

// WithExecutor delivers letters to the recipient through e instead of the
// posting goroutine. A nil executor means inline delivery.
func WithExecutor(e Executor) RegisterOption {
	return func(r *registration) {
		r.exec = e
	}
}
