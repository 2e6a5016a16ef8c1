package domain

// Result is a tagged outcome holding either a value or a catalog Error,
// never both. Services return it instead of raising errors so callers
// handle every failure explicitly.
type Result[T any] struct {
	value   T
	err     Error
	success bool
}

// Unit is the payload of results that carry no value.
type Unit struct{}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value, err: ErrNone, success: true}
}

// Failure builds a failed result. Passing ErrNone is a programming
// error, not a runtime condition, and panics.
func Failure[T any](err Error) Result[T] {
	if err.IsNone() {
		panic("domain: failure result requires a non-empty error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value returns the success payload. Calling it on a failure is a
// contract violation and panics.
func (r Result[T]) Value() T {
	if !r.success {
		panic("domain: failure results can't have value")
	}
	return r.value
}

// Err returns the failure payload, or ErrNone for successes.
func (r Result[T]) Err() Error {
	return r.err
}
