package futures

// Future is a unit of asynchronous work queried by polling. Poll either
// resolves to the final value or registers w for one wake-up and reports
// pending. A future that resolved must not be polled again.
type Future[T any] interface {
	Poll(w Waker) Poll[T]
}

// FutureFunc adapts a poll function to the Future interface.
type FutureFunc[T any] func(w Waker) Poll[T]

func (f FutureFunc[T]) Poll(w Waker) Poll[T] { return f(w) }

// Value returns a future that resolves to v on the first poll.
func Value[T any](v T) Future[T] {
	return FutureFunc[T](func(Waker) Poll[T] {
		return Ready(v)
	})
}

// Never returns a future that never resolves.
func Never[T any]() Future[T] {
	return FutureFunc[T](func(Waker) Poll[T] {
		return Pending[T]()
	})
}
