package futures

import "log/slog"

// Logged wraps f so that every poll is traced at debug level with the poll
// count and outcome. Useful for diagnosing a composition that appears stuck.
func Logged[T any](f Future[T], l *slog.Logger, name string) Future[T] {
	polls := 0
	return FutureFunc[T](func(w Waker) Poll[T] {
		polls++
		p := f.Poll(w)
		if p.Ready {
			l.Debug("future resolved", "future", name, "polls", polls)
		} else {
			l.Debug("future pending", "future", name, "polls", polls)
		}
		return p
	})
}
