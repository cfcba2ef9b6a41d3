// Package observe wires observation into remote calls. The hooks system
// is type-parameterized, so observers must be registered with the
// payload type they want to observe; the api package invokes them
// around every classified call.
package observe

import (
	"context"
	"time"

	"github.com/appoly/toolbox-go/toolbox/core"
)

// WithStartHook attaches a call-start hook for payload type T to the
// context. The callback fires before the remote thunk runs.
func WithStartHook[T any](ctx context.Context, callback func()) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnStart: callback,
	})
}

// WithSuccessHook attaches a success hook for payload type T.
// The callback fires with each successfully classified value.
func WithSuccessHook[T any](ctx context.Context, callback func(T)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnSuccess: callback,
	})
}

// WithErrorHook attaches an error hook for payload type T.
// The callback fires with each classified failure.
func WithErrorHook[T any](ctx context.Context, callback func(*core.Error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnError: callback,
	})
}

// WithCompleteHook attaches a completion hook for payload type T.
// The callback fires after classification with the call's duration,
// whether the call succeeded or failed.
func WithCompleteHook[T any](ctx context.Context, callback func(time.Duration)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnComplete: callback,
	})
}
