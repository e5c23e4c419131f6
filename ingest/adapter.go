package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/bionetkit/interactome/graph"
)

// Adapter translates normalized interaction records into store upserts.
type Adapter struct {
	store   *graph.Store
	aliases graph.KindAliases
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *otelMetrics
}

// Option configures an Adapter.
type Option func(*Adapter) error

// WithLogger sets the structured logger. The default logger is used when
// none is provided.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) error {
		if logger != nil {
			a.logger = logger
		}
		return nil
	}
}

// WithTracer enables a span per ingestion batch.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Adapter) error {
		a.tracer = tracer
		return nil
	}
}

// WithMeter enables the adapter's metric instruments.
func WithMeter(meter metric.Meter) Option {
	return func(a *Adapter) error {
		if meter == nil {
			return nil
		}
		m, err := newOTelMetrics(meter)
		if err != nil {
			return err
		}
		a.metrics = m
		return nil
	}
}

// WithKindAliases replaces the entity-kind alias table.
func WithKindAliases(aliases graph.KindAliases) Option {
	return func(a *Adapter) error {
		if aliases != nil {
			a.aliases = aliases
		}
		return nil
	}
}

// NewAdapter creates an adapter over the store.
func NewAdapter(store *graph.Store, opts ...Option) (*Adapter, error) {
	a := &Adapter{
		store:   store,
		aliases: graph.DefaultKindAliases(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// BatchResult summarizes one ingestion batch.
type BatchResult struct {
	// BatchID is the UUID stamped on the batch.
	BatchID string

	// Loaded is the number of records applied to the store.
	Loaded int

	// Rejected is the number of records dropped before the store.
	Rejected int
}

// accepted is a validated record with its normalized endpoint kinds.
type accepted struct {
	rec   Record
	kindA graph.EntityKind
	kindB graph.EntityKind
}

// IngestBatch applies a batch of records to the store. Rejected records are
// counted and skipped; a merge conflict aborts the batch and restores the
// store to its pre-batch state before returning the error.
//
// All node upserts complete before the first edge upsert.
func (a *Adapter) IngestBatch(ctx context.Context, records []Record) (BatchResult, error) {
	batchID := uuid.NewString()
	start := time.Now()

	var span trace.Span
	if a.tracer != nil {
		ctx, span = a.tracer.Start(ctx, "ingest.batch")
		defer span.End()
		span.SetAttributes(
			attribute.String("batch.id", batchID),
			attribute.Int("batch.records", len(records)),
		)
	}

	result := BatchResult{BatchID: batchID}
	batch := make([]accepted, 0, len(records))
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			result.Rejected++
			a.logger.Warn("rejected interaction record",
				"batch", batchID, "index", i, "reason", err,
				"id_a", rec.IDA, "id_b", rec.IDB, "resource", rec.Resource)
			continue
		}
		kindA, kindB, err := rec.kinds(a.aliases)
		if err != nil {
			result.Rejected++
			a.logger.Warn("rejected interaction record",
				"batch", batchID, "index", i, "reason", err,
				"id_a", rec.IDA, "id_b", rec.IDB, "resource", rec.Resource)
			continue
		}
		batch = append(batch, accepted{rec: rec, kindA: kindA, kindB: kindB})
	}

	snapshot := a.store.Clone()
	if err := a.apply(batch); err != nil {
		a.store.Restore(snapshot)
		if span != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		return result, fmt.Errorf("batch %s aborted: %w", batchID, err)
	}
	result.Loaded = len(batch)

	elapsed := time.Since(start)
	a.metrics.recordBatch(ctx, batchID, result.Loaded, result.Rejected, elapsed)
	if span != nil {
		span.SetAttributes(
			attribute.Int("batch.loaded", result.Loaded),
			attribute.Int("batch.rejected", result.Rejected),
		)
		span.SetStatus(codes.Ok, "")
	}
	a.logger.Info("ingested interaction batch",
		"batch", batchID,
		"loaded", result.Loaded,
		"rejected", result.Rejected,
		"nodes", a.store.NodeCount(),
		"edges", a.store.EdgeCount(),
		"elapsed", elapsed)
	return result, nil
}

// Ingest applies a single record; a convenience wrapper over IngestBatch.
func (a *Adapter) Ingest(ctx context.Context, rec Record) (BatchResult, error) {
	return a.IngestBatch(ctx, []Record{rec})
}

// apply performs the two upsert passes over an already validated batch.
func (a *Adapter) apply(batch []accepted) error {
	for _, item := range batch {
		rec := item.rec
		identA, err := graph.NewIdentity(rec.IDA)
		if err != nil {
			return err
		}
		identB, err := graph.NewIdentity(rec.IDB)
		if err != nil {
			return err
		}
		if _, err := a.store.UpsertNode(identA, rec.LabelA, item.kindA, rec.TaxonA, rec.NodeAttrsA); err != nil {
			return err
		}
		if _, err := a.store.UpsertNode(identB, rec.LabelB, item.kindB, rec.TaxonB, rec.NodeAttrsB); err != nil {
			return err
		}
	}
	for _, item := range batch {
		rec := item.rec
		_, err := a.store.UpsertEdge(rec.IDA, rec.IDB, graph.EdgeUpdate{
			Type:        rec.Type,
			Directed:    rec.IsDirected,
			Stimulation: rec.IsStimulation,
			Inhibition:  rec.IsInhibition,
			Sources:     rec.sources(),
			Attrs:       rec.edgeAttrs(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
