package decoders

import "fmt"

// Result holds either a decoded value or a *DecoderError, never both. The zero
// Result is a success holding the zero T.
type Result[T any] struct {
	value T
	err   *DecoderError
}

// Ok returns a successful Result.
func Ok[T any](value T) Result[T] { return Result[T]{value: value} }

// Error returns a failed Result with the given message.
func Error[T any](message string) Result[T] {
	return Result[T]{err: newDecoderError(message)}
}

// Fail returns a failed Result carrying err. It is used to propagate a failure
// across result types; a nil err yields the generic invalid-input failure.
func Fail[T any](err *DecoderError) Result[T] {
	if err == nil {
		err = newDecoderError(message(MsgInvalidInput, nil))
	}
	return Result[T]{err: err}
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Value returns the decoded value and true on success, the zero T and false on failure.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Get returns the decoded value, or the zero T and the *DecoderError.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Err returns nil on success and the *DecoderError otherwise.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Failure returns the *DecoderError and true when r is a failure.
func (r Result[T]) Failure() (*DecoderError, bool) { return r.err, r.err != nil }

// MustGet returns the decoded value and panics on failure.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

func (r Result[T]) String() string {
	if r.err != nil {
		return "Failure(" + r.err.Message + ")"
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// Map applies f to the value of a successful Result. Failures pass through unchanged.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return Ok(f(r.value))
}

// Chain invokes f with the value of a successful Result and returns its Result.
// Failures pass through unchanged without invoking f.
func Chain[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return f(r.value)
}
