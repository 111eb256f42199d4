package futures

import (
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

func Test_RetryFirstAttemptSucceeds(t *testing.T) {
	attempts := 0
	r := Retry(func() Future[Result[int]] {
		attempts++
		return Value(Ok(1))
	}, backoff.NewConstantBackOff(0), nil)

	p := r.Poll(nop)
	require.True(t, p.Ready)
	require.NoError(t, p.Value.Err)
	require.Equal(t, 1, p.Value.Value)
	require.Equal(t, 1, attempts)
}

func Test_RetryRetriesUntilSuccess(t *testing.T) {
	boom := errors.New("boom")

	attempts := 0
	r := Retry(func() Future[Result[int]] {
		attempts++
		if attempts < 3 {
			return Value(Err[int](boom))
		}
		return Value(Ok(7))
	}, backoff.NewConstantBackOff(0), nil)

	wakes := 0
	w := WakerFunc(func() { wakes++ })

	// With no timer factory every failed attempt schedules the next one for
	// the following drive call, announced through the waker.
	require.False(t, r.Poll(w).Ready)
	require.False(t, r.Poll(w).Ready)

	p := r.Poll(w)
	require.True(t, p.Ready)
	require.NoError(t, p.Value.Err)
	require.Equal(t, 7, p.Value.Value)
	require.Equal(t, 3, attempts)
	require.Equal(t, 2, wakes)
}

func Test_RetryStopsWhenPolicyGivesUp(t *testing.T) {
	boom := errors.New("boom")

	attempts := 0
	r := Retry(func() Future[Result[int]] {
		attempts++
		return Value(Err[int](boom))
	}, backoff.WithMaxRetries(backoff.NewConstantBackOff(0), 2), nil)

	require.False(t, r.Poll(nop).Ready)
	require.False(t, r.Poll(nop).Ready)

	p := r.Poll(nop)
	require.True(t, p.Ready)
	require.Equal(t, boom, p.Value.Err)
	require.Equal(t, 3, attempts)
}

func Test_RetryWaitsForTimerBetweenAttempts(t *testing.T) {
	boom := errors.New("boom")

	timer := &manualFuture[struct{}]{}
	var delays []time.Duration

	attempts := 0
	r := Retry(func() Future[Result[int]] {
		attempts++
		if attempts == 1 {
			return Value(Err[int](boom))
		}
		return Value(Ok(9))
	}, backoff.NewConstantBackOff(50*time.Millisecond), func(d time.Duration) Future[struct{}] {
		delays = append(delays, d)
		return timer
	})

	require.False(t, r.Poll(nop).Ready)
	require.Equal(t, []time.Duration{50 * time.Millisecond}, delays)

	// The next attempt must not start until the timer resolves.
	require.False(t, r.Poll(nop).Ready)
	require.Equal(t, 1, attempts)

	timer.resolve(struct{}{})
	p := r.Poll(nop)
	require.True(t, p.Ready)
	require.NoError(t, p.Value.Err)
	require.Equal(t, 9, p.Value.Value)
	require.Equal(t, 2, attempts)
}

func Test_RetryPolledAfterCompletionPanics(t *testing.T) {
	r := Retry(func() Future[Result[int]] {
		return Value(Ok(1))
	}, backoff.NewConstantBackOff(0), nil)

	require.True(t, r.Poll(nop).Ready)
	require.Panics(t, func() {
		r.Poll(nop)
	})
}
