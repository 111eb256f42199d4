package futures

import "sync"

// Go runs fn on its own goroutine and exposes its completion as a future.
// Poll records the most recent waker; the goroutine fires it exactly once
// when fn returns. This is the boundary between ordinary Go concurrency and
// the polling model: Go never drives anything, the caller still re-polls
// after the wake.
//
// Unlike the combinators in this package, the returned future tolerates
// being polled after resolution and keeps reporting the same value, since
// the wake and the final poll race by nature.
func Go[T any](fn func() T) Future[T] {
	s := &goState[T]{}

	go func() {
		v := fn()

		s.mu.Lock()
		s.value = v
		s.done = true
		w := s.waker
		s.waker = nil
		s.mu.Unlock()

		if w != nil {
			w.Wake()
		}
	}()

	return FutureFunc[T](func(w Waker) Poll[T] {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.done {
			return Ready(s.value)
		}
		s.waker = w
		return Pending[T]()
	})
}

type goState[T any] struct {
	mu    sync.Mutex
	value T
	done  bool
	waker Waker
}
