// Package interactome builds one consistent molecular-interaction graph from
// dozens of heterogeneous, independently curated resources.
//
// Each node is a biological entity deduplicated by canonical identity; each
// edge is a relationship that may be asserted by multiple resources with
// conflicting direction and sign. The engine tracks every assertion with its
// provenance, merges arbitrary per-node and per-edge metadata without losing
// data, collapses structural duplicates, and computes a majority direction
// and sign per edge.
//
// # Core Concepts
//
// The engine is organized around a few concepts:
//
//   - Store: an arena of nodes and edges with upsert-based deduplication
//   - DirectionRecord: per-edge direction/sign assertions with provenance
//   - Combinator: the generic attribute-merge algorithm in package attrs
//   - Merger: node and edge collapse for structural duplicates
//   - Resolver: majority direction and sign consensus per edge
//   - Adapter: batch ingestion of normalized interaction records
//
// # Getting Started
//
// Create an engine and feed it record batches:
//
//	eng, err := interactome.New(
//	    interactome.WithLogger(logger),
//	    interactome.WithCatalog(catalog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eng.IngestBatch(ctx, records)
//	if err != nil {
//	    // the batch was rolled back; the store is unchanged
//	}
//
//	merged, err := eng.Collapse()
//	consensus := eng.Consensus()
//
// # Error Handling
//
// The engine uses sentinel errors and a structured error type:
//
//	if errors.Is(err, interactome.ErrBatchAborted) {
//	    // resubmit after fixing the offending records
//	}
//
// Lookup misses are reported through ok-booleans, never errors. Majority
// ties are valid terminal states that consumers must handle explicitly.
//
// # Concurrency
//
// The engine is single-threaded and batch-oriented by design. No operation
// blocks, and no concurrent mutation of the store is supported.
package interactome
