package ingest

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// otelMetrics holds the OpenTelemetry instruments for the adapter. They are
// created once when a meter is configured and reused for every batch.
type otelMetrics struct {
	// loadedCounter increments per record applied to the store
	loadedCounter metric.Int64Counter

	// rejectedCounter increments per record rejected before the store
	rejectedCounter metric.Int64Counter

	// batchDuration records batch wall time in milliseconds
	batchDuration metric.Float64Histogram
}

// newOTelMetrics creates the adapter's metric instruments from a meter.
func newOTelMetrics(meter metric.Meter) (*otelMetrics, error) {
	m := &otelMetrics{}
	var err error

	m.loadedCounter, err = meter.Int64Counter(
		"ingest.records.loaded",
		metric.WithDescription("Number of interaction records applied to the store"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create loaded counter: %w", err)
	}

	m.rejectedCounter, err = meter.Int64Counter(
		"ingest.records.rejected",
		metric.WithDescription("Number of interaction records rejected before the store"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejected counter: %w", err)
	}

	m.batchDuration, err = meter.Float64Histogram(
		"ingest.batch.duration",
		metric.WithDescription("Ingestion batch duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create batch duration histogram: %w", err)
	}

	return m, nil
}

// recordBatch reports one completed batch. Nil metrics are a silent no-op so
// observability stays optional.
func (m *otelMetrics) recordBatch(ctx context.Context, batchID string, loaded, rejected int, elapsed time.Duration) {
	if m == nil {
		return
	}
	batchAttr := metric.WithAttributes(attribute.String("batch.id", batchID))
	m.loadedCounter.Add(ctx, int64(loaded), batchAttr)
	m.rejectedCounter.Add(ctx, int64(rejected), batchAttr)
	m.batchDuration.Record(ctx, float64(elapsed.Milliseconds()), batchAttr)
}
