package ponyexpress

// Letter is what an Express delivers: the name it was posted under, the
// optional sender and the contents.
type Letter[C any] struct {
	Name     string
	Sender   any
	Contents C
}

// Recipient receives letters of an Express it was added to.
type Recipient[C any] interface {
	Receive(letter Letter[C])
}

// RecipientFunc adapts a function to Recipient.
type RecipientFunc[C any] func(letter Letter[C])

// Receive calls f(letter).
func (f RecipientFunc[C]) Receive(letter Letter[C]) { f(letter) }
