package futures

// Join combines futures into one future that resolves once every input has
// resolved, yielding all outputs in argument order. Completion order does not
// affect output order. Every input is polled on every drive call until it
// completes; a completed input is a cheap no-op to visit again.
func Join[T any](futs ...Future[T]) Future[[]T] {
	cells := make([]*MaybeDone[T], len(futs))
	for i, f := range futs {
		cells[i] = NewMaybeDone(f)
	}

	done := false
	return FutureFunc[[]T](func(w Waker) Poll[[]T] {
		if done {
			panic("futures: Join polled after completion")
		}

		allDone := true
		for _, c := range cells {
			allDone = c.Poll(w) && allDone
		}
		if !allDone {
			return Pending[[]T]()
		}

		done = true
		out := make([]T, len(cells))
		for i, c := range cells {
			out[i], _ = c.Take()
		}
		return Ready(out)
	})
}

// Pair is the output of a two-way join.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Join2 joins two futures of differing output types.
func Join2[A, B any](a Future[A], b Future[B]) Future[Pair[A, B]] {
	ca := NewMaybeDone(a)
	cb := NewMaybeDone(b)

	done := false
	return FutureFunc[Pair[A, B]](func(w Waker) Poll[Pair[A, B]] {
		if done {
			panic("futures: Join2 polled after completion")
		}

		allDone := ca.Poll(w)
		allDone = cb.Poll(w) && allDone
		if !allDone {
			return Pending[Pair[A, B]]()
		}

		done = true
		va, _ := ca.Take()
		vb, _ := cb.Take()
		return Ready(Pair[A, B]{First: va, Second: vb})
	})
}
