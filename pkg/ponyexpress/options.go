package ponyexpress

import (
	"log/slog"

	"github.com/dmitrymomot/ponyexpress/pkg/postoffice"
)

// Option configures an Express.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// AddOption configures a single observer.
type AddOption func(*observerOptions)

type observerOptions struct {
	queue postoffice.Executor
}

// WithQueue delivers letters to the observer through q instead of the posting
// goroutine.
func WithQueue(q postoffice.Executor) AddOption {
	return func(o *observerOptions) {
		o.queue = q
	}
}
