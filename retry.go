package futures

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry re-runs a fallible computation until it succeeds or the backoff
// policy gives up. attempt builds a fresh future for each try. After a
// failure the next delay is taken from policy; backoff.Stop resolves the
// retry with the last failure.
//
// Delays are expressed as futures built by newTimer, so time remains an
// external concern; After provides a clock-backed implementation. A nil
// newTimer schedules the next attempt for the following drive call with no
// delay. Each attempt and each timer is polled at most once per drive call.
func Retry[T any](attempt func() Future[Result[T]], policy backoff.BackOff, newTimer func(d time.Duration) Future[struct{}]) Future[Result[T]] {
	policy.Reset()

	cur := attempt()
	var timer Future[struct{}]
	done := false

	return FutureFunc[Result[T]](func(w Waker) Poll[Result[T]] {
		if done {
			panic("futures: Retry polled after completion")
		}

		if timer != nil {
			if p := timer.Poll(w); !p.Ready {
				return Pending[Result[T]]()
			}
			timer = nil
			cur = attempt()
		}

		p := cur.Poll(w)
		if !p.Ready {
			return Pending[Result[T]]()
		}
		if p.Value.Err == nil {
			done = true
			return Ready(p.Value)
		}

		d := policy.NextBackOff()
		if d == backoff.Stop {
			done = true
			return Ready(p.Value)
		}

		if newTimer != nil {
			timer = newTimer(d)
		} else {
			cur = attempt()
		}

		// The next attempt (or its timer) has not been polled yet; ask the
		// driver to come straight back.
		w.Wake()
		return Pending[Result[T]]()
	})
}
