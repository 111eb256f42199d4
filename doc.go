// Package futures implements poll-based combination of asynchronous
// computations: completion tracking for a single future and operators that
// drive several independently progressing futures as one.
//
// A Future is inert until polled by an external driver. Poll either resolves
// to the final value or registers a Waker for a single wake-up and reports
// pending; the driver re-polls after the wake. Every combinator exposes the
// same Poll shape, so combinations nest freely: a Select of two Joins is a
// valid future.
//
// Combinators are single-driver: a combined future must not be polled from
// two goroutines at once, and must not be polled again after it has resolved.
// Polling past resolution panics.
//
// The package does not contain a scheduler, timers, or I/O. It assumes a
// cooperative, one-poll-at-a-time execution model provided externally and
// only adds composition on top of it.
package futures
