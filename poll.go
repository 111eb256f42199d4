package futures

// Waker is the wake-up capability handed to a future on every poll. When a
// poll reports pending, the future arranges for Wake to be called once new
// progress is possible; the waker fires at most once per pending poll.
// Spurious wakes are allowed, the woken driver simply polls again.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

func (f WakerFunc) Wake() { f() }

// Poll is the outcome of a single poll: either a final value or "not yet".
type Poll[T any] struct {
	Value T
	Ready bool
}

// Ready returns a resolved poll outcome carrying v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{Value: v, Ready: true}
}

// Pending returns a not-yet-resolved poll outcome.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}
