package futures

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TrySelectFirstSuccessWins(t *testing.T) {
	boom := errors.New("boom")

	a := &manualFuture[Result[int]]{}
	b := &manualFuture[Result[int]]{}
	c := &manualFuture[Result[int]]{}
	s := TrySelect[int](a, b, c)

	// b fails while a is still running: the combination must keep going.
	b.resolve(Err[int](boom))
	require.False(t, s.Poll(nop).Ready)

	c.resolve(Ok(1))
	p := s.Poll(nop)
	require.True(t, p.Ready)
	require.NoError(t, p.Value.Err)
	require.Equal(t, 1, p.Value.Value)

	// The failed input resolved in the first pass and was not driven again.
	require.Equal(t, 1, b.polls)
}

func Test_TrySelectAllFailReturnsEarliestFailure(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	b := &manualFuture[Result[int]]{}
	c := &manualFuture[Result[int]]{}
	s := TrySelect[int](b, c)

	b.resolve(Err[int](e1))
	c.resolve(Err[int](e2))

	p := s.Poll(nop)
	require.True(t, p.Ready)
	require.Equal(t, e1, p.Value.Err)
}

func Test_TrySelectPendingWhileAnyRuns(t *testing.T) {
	boom := errors.New("boom")

	a := &manualFuture[Result[int]]{}
	b := &manualFuture[Result[int]]{}
	s := TrySelect[int](a, b)

	b.resolve(Err[int](boom))

	// One failure and one still-running input is not a final state.
	require.False(t, s.Poll(nop).Ready)
	require.False(t, s.Poll(nop).Ready)

	a.resolve(Err[int](errors.New("late")))
	p := s.Poll(nop)
	require.True(t, p.Ready)
	require.Error(t, p.Value.Err)
}

func Test_TrySelectRequiresAnInput(t *testing.T) {
	require.Panics(t, func() {
		TrySelect[int]()
	})
}

func Test_TrySelectPolledAfterCompletionPanics(t *testing.T) {
	s := TrySelect(Value(Ok(1)))

	require.True(t, s.Poll(nop).Ready)
	require.Panics(t, func() {
		s.Poll(nop)
	})
}
