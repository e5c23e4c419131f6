package interactome

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bionetkit/interactome/catalog"
	"github.com/bionetkit/interactome/graph"
	"github.com/bionetkit/interactome/ingest"
	"github.com/bionetkit/interactome/query"
)

// Engine is the central facade over the interaction graph: it owns the
// entity store and coordinates ingestion, duplicate collapse, consensus
// resolution, and edge selection.
//
// The Engine is single-threaded: drive it from one goroutine, batch by
// batch.
type Engine struct {
	store    *graph.Store
	merger   *graph.Merger
	resolver *graph.Resolver
	adapter  *ingest.Adapter
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

// New creates an Engine with the provided options.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.catalog == nil {
		cfg.catalog = catalog.Default()
	}

	var storeOpts []graph.StoreOption
	if cfg.tiebreak != nil {
		storeOpts = append(storeOpts, graph.WithTiebreak(cfg.tiebreak))
	}
	store := graph.NewStore(storeOpts...)

	adapterOpts := []ingest.Option{
		ingest.WithLogger(cfg.logger),
		ingest.WithTracer(cfg.tracer),
		ingest.WithMeter(cfg.meter),
	}
	if cfg.kindAliases != nil {
		adapterOpts = append(adapterOpts, ingest.WithKindAliases(cfg.kindAliases))
	}
	adapter, err := ingest.NewAdapter(store, adapterOpts...)
	if err != nil {
		return nil, &EngineError{Op: "New", Kind: KindConfiguration, Err: err}
	}

	return &Engine{
		store:    store,
		merger:   graph.NewMerger(store, cfg.logger),
		resolver: graph.NewResolver(store, cfg.catalog),
		adapter:  adapter,
		catalog:  cfg.catalog,
		logger:   cfg.logger,
	}, nil
}

// Store returns the underlying entity store.
func (e *Engine) Store() *graph.Store { return e.store }

// Catalog returns the resource catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// IngestBatch applies a batch of normalized interaction records. Rejected
// records are counted and skipped; a merge conflict aborts and rolls back
// the whole batch.
func (e *Engine) IngestBatch(ctx context.Context, records []ingest.Record) (ingest.BatchResult, error) {
	result, err := e.adapter.IngestBatch(ctx, records)
	if err != nil {
		return result, &EngineError{
			Op:   "Engine.IngestBatch",
			Kind: KindMerge,
			Err:  errors.Join(ErrBatchAborted, err),
		}
	}
	return result, nil
}

// Collapse merges every group of nodes sharing a canonical identifier into
// its primary node and returns the number of nodes merged away.
func (e *Engine) Collapse() (int, error) {
	merged, err := e.merger.CollapseDuplicatesByID()
	if err != nil {
		return merged, &EngineError{
			Op:   "Engine.Collapse",
			Kind: KindMerge,
			Err:  errors.Join(ErrCollapseFailed, err),
		}
	}
	return merged, nil
}

// Merger returns the merge engine for explicit node-group merges.
func (e *Engine) Merger() *graph.Merger { return e.merger }

// Consensus computes the authoritative (direction, sign) labels for every
// edge, annotated with resource categories.
func (e *Engine) Consensus() []graph.EdgeConsensus {
	return e.resolver.Resolve()
}

// ResourcesOf returns every resource contributing any assertion to the edge.
func (e *Engine) ResourcesOf(eh graph.EdgeHandle) []string {
	return e.resolver.ResourcesOf(eh).Sorted()
}

// SelectEdges compiles a CEL expression and returns the matching edges.
func (e *Engine) SelectEdges(expr string) ([]graph.EdgeHandle, error) {
	f, err := query.Compile(expr)
	if err != nil {
		return nil, &EngineError{Op: "Engine.SelectEdges", Kind: KindValidation, Err: err}
	}
	edges, err := f.Select(e.store)
	if err != nil {
		return nil, &EngineError{Op: "Engine.SelectEdges", Kind: KindInternal, Err: err}
	}
	return edges, nil
}

// FilterOrganisms removes every node whose taxon is not in the allowed set
// together with its edges, then prunes nodes the edge removal left
// disconnected. Returns the numbers of removed edges and nodes.
func (e *Engine) FilterOrganisms(taxa ...int) (removedEdges, removedNodes int) {
	removedEdges, removedNodes = e.store.FilterOrganisms(taxa...)
	removedNodes += e.store.DeleteZeroDegreeNodes()
	e.logger.Info("filtered organisms",
		"taxa", taxa,
		"removed_edges", removedEdges,
		"removed_nodes", removedNodes)
	return removedEdges, removedNodes
}
