package futures

// Result carries the outcome of a fallible computation as a value. Fallible
// futures are Future[Result[T]]: a failure resolves the future like any
// other value, it is data rather than control flow.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{Err: err}
}
