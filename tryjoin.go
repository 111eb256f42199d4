package futures

// TryJoin combines fallible futures into one future that resolves with all
// success values in argument order, or with the first observed failure.
// Failure detection is fail-fast: the pass that finds a failed input returns
// that failure immediately, without polling the inputs declared after it in
// that pass. Inputs still running at that point are abandoned. Ties between
// inputs failing in the same pass go to the earlier argument.
func TryJoin[T any](futs ...Future[Result[T]]) Future[Result[[]T]] {
	cells := make([]*MaybeDone[Result[T]], len(futs))
	for i, f := range futs {
		cells[i] = NewMaybeDone(f)
	}

	done := false
	return FutureFunc[Result[[]T]](func(w Waker) Poll[Result[[]T]] {
		if done {
			panic("futures: TryJoin polled after completion")
		}

		allDone := true
		for _, c := range cells {
			if !c.Poll(w) {
				allDone = false
				continue
			}
			if r := c.Peek(); r.Err != nil {
				done = true
				taken, _ := c.Take()
				return Ready(Err[[]T](taken.Err))
			}
		}
		if !allDone {
			return Pending[Result[[]T]]()
		}

		done = true
		out := make([]T, len(cells))
		for i, c := range cells {
			r, _ := c.Take()
			out[i] = r.Value
		}
		return Ready(Ok(out))
	})
}

// TryJoin2 joins two fallible futures of differing output types, failing
// fast like TryJoin.
func TryJoin2[A, B any](a Future[Result[A]], b Future[Result[B]]) Future[Result[Pair[A, B]]] {
	ca := NewMaybeDone(a)
	cb := NewMaybeDone(b)

	done := false
	return FutureFunc[Result[Pair[A, B]]](func(w Waker) Poll[Result[Pair[A, B]]] {
		if done {
			panic("futures: TryJoin2 polled after completion")
		}

		allDone := true
		if ca.Poll(w) {
			if r := ca.Peek(); r.Err != nil {
				done = true
				taken, _ := ca.Take()
				return Ready(Err[Pair[A, B]](taken.Err))
			}
		} else {
			allDone = false
		}
		if cb.Poll(w) {
			if r := cb.Peek(); r.Err != nil {
				done = true
				taken, _ := cb.Take()
				return Ready(Err[Pair[A, B]](taken.Err))
			}
		} else {
			allDone = false
		}
		if !allDone {
			return Pending[Result[Pair[A, B]]]()
		}

		done = true
		ra, _ := ca.Take()
		rb, _ := cb.Take()
		return Ready(Ok(Pair[A, B]{First: ra.Value, Second: rb.Value}))
	})
}
