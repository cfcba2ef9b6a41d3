package observe_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/api"
	"github.com/appoly/toolbox-go/toolbox/core"
	"github.com/appoly/toolbox-go/toolbox/observe"
)

func TestHooksFireAroundCalls(t *testing.T) {
	var started, completed int
	var values []int
	var errs []*core.Error

	ctx := observe.WithStartHook[int](context.Background(), func() { started++ })
	ctx = observe.WithSuccessHook(ctx, func(v int) { values = append(values, v) })
	ctx = observe.WithErrorHook[int](ctx, func(e *core.Error) { errs = append(errs, e) })
	ctx = observe.WithCompleteHook[int](ctx, func(time.Duration) { completed++ })

	payload := 11
	api.Call(ctx, zerolog.Nop(), "observed success", func(ctx context.Context) (*api.Envelope[int], error) {
		return &api.Envelope[int]{Success: true, Data: &payload, Status: 200}, nil
	})
	api.Call(ctx, zerolog.Nop(), "observed failure", func(ctx context.Context) (*api.Envelope[int], error) {
		return nil, &api.StatusError{Code: 500, Message: "boom"}
	})

	if started != 2 || completed != 2 {
		t.Errorf("start/complete = %d/%d, want 2/2", started, completed)
	}
	if len(values) != 1 || values[0] != 11 {
		t.Errorf("values = %v, want [11]", values)
	}
	if len(errs) != 1 || errs[0].Code != 500 {
		t.Errorf("errs = %v, want one code-500 error", errs)
	}
}
