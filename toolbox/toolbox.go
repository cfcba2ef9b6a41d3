// Package toolbox provides thin, typed conveniences for fetching remote
// data reliably: classified call results, loading/success/error state
// streams, page-keyed paging sources with atomic invalidation, and
// pre-signed object-storage uploads.
//
// This package is the primary user-facing API. The subpackages hold the
// implementations: toolbox/core for the value types, toolbox/api for
// call classification, toolbox/paging and toolbox/upload for the two
// pipelines, toolbox/observe for hooks and metrics.
package toolbox

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/api"
	"github.com/appoly/toolbox-go/toolbox/core"
)

// Type aliases for the core abstractions. These allow users to work
// with the library without importing core directly.
type (
	// Result is the classified outcome of a remote call: Success or Error.
	Result[T any] = core.Result[T]

	// State is the UI-facing view of a remote call: Loading, Success or Error.
	State[T any] = core.State[T]

	// Error describes a classified call failure.
	Error = core.Error

	// PageData is one normalized page of a remote paginated collection.
	PageData[T any] = core.PageData[T]

	// Stream is a finite flow of events; each Emit starts a fresh run.
	Stream[T any] = core.Stream[T]

	// Envelope is the standard enveloped response body.
	Envelope[T any] = api.Envelope[T]

	// CallFunc is the transport thunk a call wraps.
	CallFunc[T any] = api.CallFunc[T]
)

// CodeUnclassified is the status code for failures without an HTTP status.
const CodeUnclassified = core.CodeUnclassified

// Result constructors.

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// Err creates a failed Result with a status code, message and optional cause.
func Err[T any](code int, message string, cause error) Result[T] {
	return core.Err[T](code, message, cause)
}

// State constructors.

// Loading creates a State marking a call as in flight.
func Loading[T any]() State[T] {
	return core.Loading[T]()
}

// Success creates a State carrying a loaded value.
func Success[T any](value T) State[T] {
	return core.Success(value)
}

// Failure creates a State carrying a classified error.
func Failure[T any](err *Error) State[T] {
	return core.Failure[T](err)
}

// Call invokes the remote thunk exactly once and classifies its outcome.
func Call[T any](ctx context.Context, logger zerolog.Logger, desc string, fn CallFunc[T]) Result[T] {
	return api.Call(ctx, logger, desc, fn)
}

// States wraps a single call as a Loading-then-terminal state stream.
func States[T any](logger zerolog.Logger, desc string, fn CallFunc[T]) Stream[State[T]] {
	return api.States(logger, desc, fn)
}

// Collect drains a stream into a slice.
func Collect[T any](ctx context.Context, stream Stream[T]) []T {
	return core.Collect(ctx, stream)
}

// Last drains a stream and returns its final event.
func Last[T any](ctx context.Context, stream Stream[T]) (T, bool) {
	return core.Last(ctx, stream)
}
