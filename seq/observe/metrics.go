package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Metrics holds the OpenTelemetry instruments recorded by Instrument.
type Metrics struct {
	pulls metric.Int64Counter
	items metric.Int64Counter
}

// NewMetrics creates the iterator instruments on the given meter:
// "seq.pulls" counts invocations of the iterator function, "seq.items"
// counts elements produced. The two differ by exactly one per iterator
// that is pulled to exhaustion.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	pulls, err := meter.Int64Counter("seq.pulls",
		metric.WithDescription("count of iterator pulls"))
	if err != nil {
		return nil, err
	}
	items, err := meter.Int64Counter("seq.items",
		metric.WithDescription("count of elements produced"))
	if err != nil {
		return nil, err
	}
	return &Metrics{pulls: pulls, items: items}, nil
}

// Instrument wraps the iterator so that every pull and every produced
// element is recorded on the Metrics instruments.
func Instrument[C, V any](ctx context.Context, m *Metrics, next core.Next[C, V]) core.Next[C, V] {
	return func() core.Result[C, V] {
		r := next()
		m.pulls.Add(ctx, 1)
		if !r.IsDone() {
			m.items.Add(ctx, 1)
		}
		return r
	}
}
