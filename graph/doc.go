// Package graph provides the entity store at the heart of the interaction
// graph: an arena of nodes and edges keyed by canonical identity, with
// upsert-based deduplication, per-resource provenance, and the collapse and
// consensus machinery that resolves structural duplicates.
//
// # Store
//
// Nodes and edges live in slot arenas addressed by generation-checked
// handles; a stale handle never resolves to a recycled slot. A name index
// maps canonical identifiers to node handles and an unordered-pair index
// maps endpoint pairs to edge handles, so lookups are constant time. Bulk
// deletions rebuild the name index from the live slots instead of patching
// it incrementally.
//
// At most one edge exists per unordered node pair. Upserting an existing
// node or edge never duplicates it: attributes combine through the attrs
// package and direction assertions accumulate on the edge's direction
// record.
//
// Callers must upsert all nodes of an ingestion batch before any of its
// edges; UpsertEdge requires both endpoints to exist.
//
// # Merging
//
// The Merger collapses nodes sharing a canonical identifier into one primary
// node (lowest creation order), combining attribute maps and redirecting
// incident edges. Redirected edges that land on an existing pair merge their
// direction records and attributes into the surviving edge.
//
// # Consensus
//
// The Resolver derives one authoritative set of (direction, sign) labels per
// edge from its direction record, annotated with the categories of the
// supporting resources. Tie policy is exactly the direction package's:
// consumers never re-derive consensus independently.
package graph
