package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a configured level cannot be parsed.
	ErrInvalidLevel = errors.New("logger: invalid level")

	// ErrInvalidFormat is returned for formats other than json and text.
	ErrInvalidFormat = errors.New("logger: invalid format")
)
