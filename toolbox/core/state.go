package core

// phase enumerates the observable phases of a remote call.
type phase int

const (
	phaseLoading phase = iota
	phaseSuccess
	phaseError
)

// State is the UI-facing view of a remote call. It exists in one of
// three states:
//   - Loading: the call is in flight (IsLoading() returns true)
//   - Success: the call produced a value (IsSuccess() returns true)
//   - Error: the call failed (IsError() returns true)
//
// A State is derived deterministically from a Result, plus an initial
// synthetic Loading emitted before the call starts.
type State[T any] struct {
	phase phase
	value T
	err   *Error
}

// Loading creates a State marking a call as in flight.
func Loading[T any]() State[T] {
	return State[T]{phase: phaseLoading}
}

// Success creates a State carrying a loaded value.
func Success[T any](value T) State[T] {
	return State[T]{phase: phaseSuccess, value: value}
}

// Failure creates a State carrying a classified error.
func Failure[T any](err *Error) State[T] {
	return State[T]{phase: phaseError, err: err}
}

// FromResult maps a terminal Result onto the equivalent State.
func FromResult[T any](r Result[T]) State[T] {
	if r.IsError() {
		return Failure[T](r.Err())
	}
	return Success(r.Value())
}

// IsLoading returns true while the call is in flight.
func (s State[T]) IsLoading() bool {
	return s.phase == phaseLoading
}

// IsSuccess returns true if the call produced a value.
func (s State[T]) IsSuccess() bool {
	return s.phase == phaseSuccess
}

// IsError returns true if the call failed.
func (s State[T]) IsError() bool {
	return s.phase == phaseError
}

// Value returns the loaded value. Only meaningful when IsSuccess()
// is true; returns the zero value otherwise.
func (s State[T]) Value() T {
	return s.value
}

// Err returns the classified error, or nil outside the Error state.
func (s State[T]) Err() *Error {
	return s.err
}
