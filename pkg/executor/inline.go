package executor

// Inline runs work in the submitting goroutine. Panics propagate to the
// caller.
type Inline struct{}

// Submit calls work immediately.
func (Inline) Submit(work func()) {
	if work != nil {
		work()
	}
}
