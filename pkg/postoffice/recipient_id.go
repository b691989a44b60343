package postoffice

import (
	"log/slog"
	"strconv"
	"sync/atomic"
)

// RecipientID is an opaque value returned from every registration. It can be
// passed to Unregister to stop deliveries to that recipient.
//
// IDs are unique for the lifetime of the process and never reused. The zero
// value is never issued and means nothing was registered.
type RecipientID struct {
	value uint64
}

var nextRecipientID atomic.Uint64

func newRecipientID() RecipientID {
	return RecipientID{value: nextRecipientID.Add(1)}
}

// IsZero reports whether the id was never issued by a PostOffice.
func (id RecipientID) IsZero() bool { return id.value == 0 }

// String returns a representation suitable for logs.
func (id RecipientID) String() string {
	return "recipient-" + strconv.FormatUint(id.value, 10)
}

// LogValue implements slog.LogValuer.
func (id RecipientID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}
