// Package core defines the core value types for remote-data handling:
// call results, call states, normalized page data, and the stream and
// hook primitives the higher-level packages build on.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other toolbox packages.
package core

import "fmt"

// CodeUnclassified is the status code used for failures that carry no
// HTTP status: connectivity problems, decode failures, and any other
// exception raised before a response was obtained.
const CodeUnclassified = -1

// Error describes a failed remote call. Code is the HTTP status code
// when one was available, or CodeUnclassified otherwise. Cause holds
// the underlying error, if any.
type Error struct {
	Code    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Result is the outcome of a single remote call. It exists in one of
// two states:
//   - Success: the call completed and produced a value (IsSuccess() returns true)
//   - Error: the call failed with a classified error (IsError() returns true)
//
// A Result is produced exactly once per call and never mutated.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result with a status code, message and optional cause.
func Err[T any](code int, message string, cause error) Result[T] {
	return Result[T]{err: &Error{Code: code, Message: message, Cause: cause}}
}

// Fail creates a failed Result from an existing Error. Useful when
// forwarding a failure across value types.
func Fail[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess returns true if this Result contains a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsError returns true if this Result contains a classified error.
func (r Result[T]) IsError() bool {
	return r.err != nil
}

// Value returns the contained value. Only meaningful when IsSuccess()
// is true; returns the zero value otherwise.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the classified error, or nil for a successful Result.
func (r Result[T]) Err() *Error {
	return r.err
}

// Unwrap returns the value and error together, for callers that prefer
// the conventional Go two-value form.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		return r.value, r.err
	}
	return r.value, nil
}

// MapResult transforms a successful Result's value; a failed Result is
// forwarded unchanged.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsError() {
		return Fail[U](r.Err())
	}
	return Ok(fn(r.Value()))
}
