package futures

// Select yields the output of whichever future resolves first. Inputs are
// polled in argument order each pass; the first input observed complete wins
// and the inputs declared after it are not polled in that pass. Losing
// inputs are abandoned: they are never polled again and receive no
// cancellation signal beyond being dropped.
func Select[T any](futs ...Future[T]) Future[T] {
	cells := make([]*MaybeDone[T], len(futs))
	for i, f := range futs {
		cells[i] = NewMaybeDone(f)
	}

	done := false
	return FutureFunc[T](func(w Waker) Poll[T] {
		if done {
			panic("futures: Select polled after completion")
		}

		for _, c := range cells {
			if c.Poll(w) {
				done = true
				v, _ := c.Take()
				return Ready(v)
			}
		}
		return Pending[T]()
	})
}
