package executor

import "errors"

var (
	// ErrClosed is returned when closing an executor twice.
	ErrClosed = errors.New("executor: closed")

	// ErrShutdownTimeout is returned when Close gives up waiting for running
	// work. It is joined with the context error.
	ErrShutdownTimeout = errors.New("executor: shutdown timed out")
)
