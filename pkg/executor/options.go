package executor

import (
	"log/slog"
	"runtime"
)

const defaultBufferSize = 64

// Option configures an executor.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	bufferSize int
	limit      int
}

func defaultOptions() options {
	return options{
		logger:     slog.Default(),
		bufferSize: defaultBufferSize,
		limit:      runtime.GOMAXPROCS(0),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger used for dropped work and recovered panics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBufferSize sets the channel capacity of Channel and the initial queue
// capacity of Serial. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithLimit sets the maximum number of concurrently running work items of a
// Pool. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}
