package core

import (
	"context"
	"time"
)

// Hooks holds typed observation callbacks for remote calls producing
// values of type T. All fields are optional - nil means no observation
// for that event. Hooks are invoked synchronously at classification
// time, so they should be fast to avoid blocking the caller.
type Hooks[T any] struct {
	OnStart    func()              // Call begins
	OnSuccess  func(T)             // Call produced a value
	OnError    func(*Error)        // Call failed with a classified error
	OnComplete func(time.Duration) // Call finished either way, with its duration
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey[T any] struct{}

// hooksContainer holds multiple hook sets for FIFO invocation.
type hooksContainer[T any] struct {
	hookSets []*Hooks[T]
}

// WithHooks attaches typed hooks to the context. Multiple calls to
// WithHooks compose in FIFO order - hooks from earlier calls are
// invoked before hooks from later calls.
//
// Example:
//
//	ctx := core.WithHooks(ctx, core.Hooks[User]{
//	    OnError: func(err *core.Error) { log.Printf("call failed: %v", err) },
//	})
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	if ctx == nil {
		panic("nil context")
	}

	existing := getHooksContainer[T](ctx)
	if existing == nil {
		return context.WithValue(ctx, hooksKey[T]{}, &hooksContainer[T]{
			hookSets: []*Hooks[T]{&hooks},
		})
	}

	newContainer := &hooksContainer[T]{
		hookSets: make([]*Hooks[T], len(existing.hookSets)+1),
	}
	copy(newContainer.hookSets, existing.hookSets)
	newContainer.hookSets[len(existing.hookSets)] = &hooks

	return context.WithValue(ctx, hooksKey[T]{}, newContainer)
}

// getHooksContainer retrieves the hooks container from context.
// Returns nil if no hooks are registered for type T.
func getHooksContainer[T any](ctx context.Context) *hooksContainer[T] {
	if ctx == nil {
		return nil
	}
	if c, ok := ctx.Value(hooksKey[T]{}).(*hooksContainer[T]); ok {
		return c
	}
	return nil
}

// NotifyStart invokes every registered OnStart hook for type T.
func NotifyStart[T any](ctx context.Context) {
	c := getHooksContainer[T](ctx)
	if c == nil {
		return
	}
	for _, h := range c.hookSets {
		if h.OnStart != nil {
			h.OnStart()
		}
	}
}

// NotifySuccess invokes every registered OnSuccess hook for type T.
func NotifySuccess[T any](ctx context.Context, value T) {
	c := getHooksContainer[T](ctx)
	if c == nil {
		return
	}
	for _, h := range c.hookSets {
		if h.OnSuccess != nil {
			h.OnSuccess(value)
		}
	}
}

// NotifyError invokes every registered OnError hook for type T.
func NotifyError[T any](ctx context.Context, err *Error) {
	c := getHooksContainer[T](ctx)
	if c == nil {
		return
	}
	for _, h := range c.hookSets {
		if h.OnError != nil {
			h.OnError(err)
		}
	}
}

// NotifyComplete invokes every registered OnComplete hook for type T.
func NotifyComplete[T any](ctx context.Context, elapsed time.Duration) {
	c := getHooksContainer[T](ctx)
	if c == nil {
		return
	}
	for _, h := range c.hookSets {
		if h.OnComplete != nil {
			h.OnComplete(elapsed)
		}
	}
}
