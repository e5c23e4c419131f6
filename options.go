package interactome

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/catalog"
	"github.com/bionetkit/interactome/graph"
)

// Option configures the Engine.
type Option func(*engineConfig)

// engineConfig holds configuration for an Engine instance.
type engineConfig struct {
	logger      *slog.Logger
	tracer      trace.Tracer
	meter       metric.Meter
	catalog     *catalog.Catalog
	tiebreak    attrs.Tiebreak
	kindAliases graph.KindAliases
}

// WithLogger sets a custom structured logger for the engine.
// If not provided, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer, enabling a span per ingestion
// batch.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter, enabling the ingestion metric
// instruments.
func WithMeter(meter metric.Meter) Option {
	return func(c *engineConfig) {
		c.meter = meter
	}
}

// WithCatalog sets the resource catalog used to annotate consensus output
// with resource categories. If not provided, the built-in default catalog
// is used.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *engineConfig) {
		c.catalog = cat
	}
}

// WithNumericTiebreak sets the function resolving conflicting numeric
// attribute values. The default keeps the maximum.
func WithNumericTiebreak(tb attrs.Tiebreak) Option {
	return func(c *engineConfig) {
		c.tiebreak = tb
	}
}

// WithKindAliases replaces the entity-kind alias table used to normalize
// the labels resource parsers emit.
func WithKindAliases(aliases graph.KindAliases) Option {
	return func(c *engineConfig) {
		c.kindAliases = aliases
	}
}
