package toolbox_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox"
)

// End-to-end through the facade: wrap a thunk, stream its states,
// collect the classified outcome.
func TestFacadeCallAndStates(t *testing.T) {
	payload := 42
	fn := func(ctx context.Context) (*toolbox.Envelope[int], error) {
		return &toolbox.Envelope[int]{Success: true, Data: &payload, Status: 200}, nil
	}

	res := toolbox.Call(context.Background(), zerolog.Nop(), "facade call", fn)
	if !res.IsSuccess() || res.Value() != 42 {
		t.Errorf("Call = %+v, want Ok(42)", res)
	}

	events := toolbox.Collect(context.Background(), toolbox.States(zerolog.Nop(), "facade flow", fn))
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].IsLoading() || !events[1].IsSuccess() {
		t.Errorf("events = %+v, want loading then success", events)
	}

	last, ok := toolbox.Last(context.Background(), toolbox.States(zerolog.Nop(), "facade last", fn))
	if !ok || !last.IsSuccess() {
		t.Errorf("Last = (%+v, %v), want terminal success", last, ok)
	}
}

func TestFacadeConstructors(t *testing.T) {
	if !toolbox.Ok("v").IsSuccess() {
		t.Error("Ok should be success")
	}
	e := toolbox.Err[string](toolbox.CodeUnclassified, "boom", nil)
	if !e.IsError() || e.Err().Code != toolbox.CodeUnclassified {
		t.Errorf("Err = %+v", e)
	}
	if !toolbox.Loading[int]().IsLoading() {
		t.Error("Loading should be loading")
	}
	if !toolbox.Success(1).IsSuccess() {
		t.Error("Success should be success")
	}
	if !toolbox.Failure[int](&toolbox.Error{Code: 1, Message: "x"}).IsError() {
		t.Error("Failure should be error")
	}
}
