package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/core"
)

// Call invokes the remote thunk exactly once and classifies its outcome
// into a Result. Registered core.Hooks for type T fire around the call:
// OnStart before the thunk runs, OnSuccess or OnError after
// classification, and OnComplete with the elapsed time.
func Call[T any](ctx context.Context, logger zerolog.Logger, desc string, fn CallFunc[T]) core.Result[T] {
	core.NotifyStart[T](ctx)
	start := time.Now()

	env, err := fn(ctx)
	res := classify(logger, desc, env, err)

	if res.IsError() {
		core.NotifyError[T](ctx, res.Err())
	} else {
		core.NotifySuccess(ctx, res.Value())
	}
	core.NotifyComplete[T](ctx, time.Since(start))
	return res
}

// States wraps a single call as a two-event stream: Loading is emitted
// immediately, then the call runs and its classified outcome follows as
// the terminal Success or Failure state. Each Emit triggers a fresh
// call; the stream is not restartable mid-flight. Cancelling the
// context aborts the in-flight call and closes the stream.
func States[T any](logger zerolog.Logger, desc string, fn CallFunc[T]) core.Stream[core.State[T]] {
	return core.Emit(func(ctx context.Context) <-chan core.State[T] {
		out := make(chan core.State[T], 1)
		go func() {
			defer close(out)

			select {
			case <-ctx.Done():
				return
			case out <- core.Loading[T]():
			}

			res := Call(ctx, logger, desc, fn)

			select {
			case <-ctx.Done():
			case out <- core.FromResult(res):
			}
		}()
		return out
	})
}
