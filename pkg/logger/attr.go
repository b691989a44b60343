package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// PostOfficeID records the post office instance under the key "post_office_id".
// If id is nil, it returns an empty Attr.
func PostOfficeID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("post_office_id", id)
}

// RecipientID records a registration id under the key "recipient_id".
// If id is nil, it returns an empty Attr.
func RecipientID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("recipient_id", id)
}

// LetterType records the letter type name under the key "letter_type".
func LetterType(name string) slog.Attr {
	return slog.String("letter_type", name)
}

// ExecutorID records an executor instance under the key "executor_id".
// If id is nil, it returns an empty Attr.
func ExecutorID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("executor_id", id)
}

// Handler records the handler kind under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Count records a number of affected items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Panic records a recovered panic value under the key "panic".
func Panic(v any) slog.Attr {
	return slog.Any("panic", v)
}
