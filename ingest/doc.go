// Package ingest drives the entity store from normalized interaction
// records produced by resource-specific parsers.
//
// The Adapter consumes Record values — the narrow contract between the
// out-of-scope parsing layer and the graph engine — and translates each into
// one node upsert per endpoint plus one edge upsert. All node upserts of a
// batch complete before any edge upsert begins; this ordering amortizes
// index maintenance and is required, not optional.
//
// Records with missing endpoint identifiers or unresolvable entity kinds are
// rejected before reaching the store: they are counted, logged, and skipped
// while the batch continues. A merge conflict inside the store, by contrast,
// aborts the whole batch and rolls the store back to its pre-batch state.
//
// Each batch is stamped with a UUID and, when a tracer or meter is
// configured, reported through OpenTelemetry spans and instruments.
package ingest
