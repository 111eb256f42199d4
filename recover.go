package futures

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// PanicError is the failure produced by Catch when a wrapped future's Poll
// panics.
type PanicError struct {
	message    string
	stacktrace string
}

func (pe *PanicError) Error() string {
	return pe.message
}

// Stacktrace returns the stack captured at the point of the panic.
func (pe *PanicError) Stacktrace() string {
	return pe.stacktrace
}

// Catch converts a panic inside f's Poll into an ordinary failure result
// carrying a *PanicError with the captured stack. The failure resolves the
// future; per the polling contract the caller must not poll it again.
func Catch[T any](f Future[Result[T]]) Future[Result[T]] {
	return FutureFunc[Result[T]](func(w Waker) (p Poll[Result[T]]) {
		defer func() {
			if r := recover(); r != nil {
				p = Ready(Err[T](&PanicError{
					message:    fmt.Sprintf("panic: %v", r),
					stacktrace: stack(r),
				}))
			}
		}()

		return f.Poll(w)
	})
}

func stack(v any) string {
	return string(goerrors.New(v).Stack())
}
