package futures

// TrySelect yields the first success among fallible futures. Unlike Select,
// every input is polled each pass: an input that resolved to a failure must
// not end the combination while others are still running. If every input
// resolves without a single success, the failure recorded by the earliest
// argument is returned. At least one input is required.
func TrySelect[T any](futs ...Future[Result[T]]) Future[Result[T]] {
	if len(futs) == 0 {
		panic("futures: TrySelect requires at least one future")
	}

	cells := make([]*MaybeDone[Result[T]], len(futs))
	for i, f := range futs {
		cells[i] = NewMaybeDone(f)
	}

	done := false
	return FutureFunc[Result[T]](func(w Waker) Poll[Result[T]] {
		if done {
			panic("futures: TrySelect polled after completion")
		}

		allDone := true
		for _, c := range cells {
			if !c.Poll(w) {
				allDone = false
				continue
			}
			if r := c.Peek(); r.Err == nil {
				done = true
				res, _ := c.Take()
				return Ready(res)
			}
		}
		if !allDone {
			return Pending[Result[T]]()
		}

		// Every input resolved and none succeeded. All cells still hold
		// their failures, so the earliest argument's failure is reported.
		done = true
		res, _ := cells[0].Take()
		return Ready(res)
	})
}
