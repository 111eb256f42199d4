package futures

// Test helpers shared across this package's tests.

var nop = WakerFunc(func() {})

// manualFuture stays pending until the test resolves it, counting polls so
// tests can assert exactly which inputs a pass touched.
type manualFuture[T any] struct {
	polls int
	ready bool
	value T
}

func (m *manualFuture[T]) Poll(Waker) Poll[T] {
	m.polls++
	if m.ready {
		return Ready(m.value)
	}
	return Pending[T]()
}

func (m *manualFuture[T]) resolve(v T) {
	m.ready = true
	m.value = v
}
