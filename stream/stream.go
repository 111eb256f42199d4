// Package stream implements merging of asynchronous sequences driven by the
// polling model of the futures package.
package stream

import "github.com/asyncgo/futures"

// Next is one step of a sequence: an item, or exhaustion when OK is false.
type Next[T any] struct {
	Value T
	OK    bool
}

// Item wraps v as a yielded step.
func Item[T any](v T) Next[T] {
	return Next[T]{Value: v, OK: true}
}

// End is the exhaustion step.
func End[T any]() Next[T] {
	return Next[T]{}
}

// Stream is an asynchronous sequence queried by polling. PollNext resolves
// to the next step or registers w for one wake-up and reports pending.
// Streams here are fused: once exhausted they keep reporting exhaustion and
// never yield again.
type Stream[T any] interface {
	PollNext(w futures.Waker) futures.Poll[Next[T]]
}

// StreamFunc adapts a poll function to the Stream interface.
type StreamFunc[T any] func(w futures.Waker) futures.Poll[Next[T]]

func (f StreamFunc[T]) PollNext(w futures.Waker) futures.Poll[Next[T]] { return f(w) }

// FromSlice returns a stream that yields the given items in order, one per
// poll, and then reports exhaustion.
func FromSlice[T any](items ...T) Stream[T] {
	i := 0
	return StreamFunc[T](func(futures.Waker) futures.Poll[Next[T]] {
		if i >= len(items) {
			return futures.Ready(End[T]())
		}
		v := items[i]
		i++
		return futures.Ready(Item(v))
	})
}

// Never returns a stream that never yields and never ends.
func Never[T any]() Stream[T] {
	return StreamFunc[T](func(futures.Waker) futures.Poll[Next[T]] {
		return futures.Pending[Next[T]]()
	})
}
