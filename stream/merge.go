package stream

import "github.com/asyncgo/futures"

// Merge interleaves two streams into one. Each poll yields at most one item.
// The left stream is polled first; when it yields, the waker is fired before
// the item is returned so the driver comes straight back for the right
// stream instead of letting a busy left stream starve it. When the left
// stream has nothing this pass, the right stream is polled instead.
//
// The merged stream ends only once both inputs have separately ended; an
// ended input is never polled again.
func Merge[T any](left, right Stream[T]) Stream[T] {
	return &merged[T]{left: left, right: right}
}

// MergeAll left-folds Merge over the given streams, so earlier streams are
// preferred at every step, subject to the one-item-per-poll fairness rule.
func MergeAll[T any](streams ...Stream[T]) Stream[T] {
	switch len(streams) {
	case 0:
		return StreamFunc[T](func(futures.Waker) futures.Poll[Next[T]] {
			return futures.Ready(End[T]())
		})
	case 1:
		return streams[0]
	}

	m := streams[0]
	for _, s := range streams[1:] {
		m = Merge(m, s)
	}
	return m
}

type merged[T any] struct {
	left      Stream[T]
	right     Stream[T]
	leftDone  bool
	rightDone bool
}

func (m *merged[T]) PollNext(w futures.Waker) futures.Poll[Next[T]] {
	if !m.leftDone {
		if p := m.left.PollNext(w); p.Ready {
			if p.Value.OK {
				// Fairness re-poll: give the right stream a chance on the
				// next drive call even if the left stays ready.
				w.Wake()
				return p
			}
			m.leftDone = true
			m.left = nil
		}
	}

	if !m.rightDone {
		if p := m.right.PollNext(w); !p.Ready || p.Value.OK {
			return p
		}
		m.rightDone = true
		m.right = nil
	}

	if m.leftDone && m.rightDone {
		return futures.Ready(End[T]())
	}
	return futures.Pending[Next[T]]()
}
