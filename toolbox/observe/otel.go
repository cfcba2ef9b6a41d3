package observe

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/appoly/toolbox-go/toolbox/core"
)

// Metrics holds the OpenTelemetry instruments recorded for remote
// calls: a call counter, an error counter, and a duration histogram.
type Metrics struct {
	calls    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates the call instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	calls, err := meter.Int64Counter("toolbox.api.calls",
		metric.WithDescription("count of remote calls"))
	if err != nil {
		return nil, fmt.Errorf("create calls counter: %w", err)
	}
	errs, err := meter.Int64Counter("toolbox.api.errors",
		metric.WithDescription("count of classified call failures"))
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}
	duration, err := meter.Float64Histogram("toolbox.api.duration_ms",
		metric.WithDescription("remote call duration in milliseconds"))
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}
	return &Metrics{calls: calls, errors: errs, duration: duration}, nil
}

// Instrument attaches hooks for payload type T that record every call
// against m's instruments. Multiple payload types can be instrumented
// on the same context by calling Instrument once per type.
func Instrument[T any](ctx context.Context, m *Metrics) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnStart: func() {
			m.calls.Add(ctx, 1)
		},
		OnError: func(*core.Error) {
			m.errors.Add(ctx, 1)
		},
		OnComplete: func(elapsed time.Duration) {
			m.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond))
		},
	})
}
