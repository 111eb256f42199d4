package futures

type doneState uint8

const (
	stateRunning doneState = iota
	stateDone
	stateGone
)

// MaybeDone tracks a single future through completion. It owns the future
// while it runs, holds the output once it resolves, and becomes empty after
// the output has been taken. State only moves forward: running, done, gone.
type MaybeDone[T any] struct {
	fut   Future[T]
	value T
	state doneState
}

// NewMaybeDone wraps f in a fresh, still-running cell.
func NewMaybeDone[T any](f Future[T]) *MaybeDone[T] {
	return &MaybeDone[T]{fut: f}
}

// Poll drives the inner future once if the cell is still running and reports
// whether the cell is now complete. A complete cell reports true without
// touching the inner future again. Polling a cell whose value has been taken
// is a programming error and panics.
func (m *MaybeDone[T]) Poll(w Waker) bool {
	switch m.state {
	case stateRunning:
		p := m.fut.Poll(w)
		if !p.Ready {
			return false
		}
		m.value = p.Value
		m.fut = nil
		m.state = stateDone
		return true
	case stateDone:
		return true
	default:
		panic("futures: MaybeDone polled after value taken")
	}
}

// Peek returns a pointer to the output if the inner future has resolved and
// the value has not been taken yet, nil otherwise. Peek never changes state.
func (m *MaybeDone[T]) Peek() *T {
	if m.state != stateDone {
		return nil
	}
	return &m.value
}

// Take moves the output out of the cell, leaving it empty. It reports false
// if the cell is still running or the value was already taken.
func (m *MaybeDone[T]) Take() (T, bool) {
	var zero T
	if m.state != stateDone {
		return zero, false
	}
	v := m.value
	m.value = zero
	m.state = stateGone
	return v, true
}
