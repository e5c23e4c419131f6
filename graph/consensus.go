package graph

import (
	"github.com/bionetkit/interactome/catalog"
	"github.com/bionetkit/interactome/direction"
)

// EdgeConsensus is one authoritative (direction, sign) label for an edge,
// annotated with provenance for downstream reporting.
type EdgeConsensus struct {
	// From and To are node identifiers in consensus orientation.
	From string
	To   string

	// Directed reports whether the edge carries direction at all.
	Directed bool

	// Sign is one of the direction package's sign labels.
	Sign string

	// Type classifies the relationship.
	Type InteractionType

	// Resources are the resources supporting the consensus direction
	// (or the undirected assertion), in lexical order.
	Resources []string

	// Categories are the catalog categories of the supporting resources,
	// in lexical order.
	Categories []string
}

// Resolver derives consensus labels for every edge in a store. The tie
// policy is exactly the direction record's: ties emit both directions and
// both signs. Downstream consumers must not re-derive consensus themselves.
type Resolver struct {
	store   *Store
	catalog *catalog.Catalog
}

// NewResolver creates a resolver. A nil catalog disables category
// annotation.
func NewResolver(store *Store, cat *catalog.Catalog) *Resolver {
	return &Resolver{store: store, catalog: cat}
}

// Resolve computes the consensus labels for all live edges.
func (r *Resolver) Resolve() []EdgeConsensus {
	var out []EdgeConsensus
	for _, eh := range r.store.Edges() {
		out = append(out, r.ResolveEdge(eh)...)
	}
	return out
}

// ResolveEdge computes the consensus labels for a single edge.
func (r *Resolver) ResolveEdge(eh EdgeHandle) []EdgeConsensus {
	e := r.store.EdgeAt(eh)
	if e == nil {
		return nil
	}
	var out []EdgeConsensus
	for _, c := range e.Direction.ConsensusEdges() {
		var supporting direction.Resources
		if c.Directed {
			supporting = e.Direction.SourcesBetween(c.From, c.To)
		} else {
			supporting = e.Direction.Sources(direction.KeyUndirected)
		}
		ec := EdgeConsensus{
			From:      c.From,
			To:        c.To,
			Directed:  c.Directed,
			Sign:      c.Sign,
			Type:      e.Type,
			Resources: supporting.Sorted(),
		}
		if r.catalog != nil {
			ec.Categories = r.catalog.CategoriesOf(ec.Resources)
		}
		out = append(out, ec)
	}
	return out
}

// ResourcesOf returns every resource contributing any assertion to the edge,
// across all direction keys.
func (r *Resolver) ResourcesOf(eh EdgeHandle) direction.Resources {
	e := r.store.EdgeAt(eh)
	if e == nil {
		return nil
	}
	all := make(direction.Resources)
	for _, k := range []direction.Key{direction.KeyStraight, direction.KeyReverse, direction.KeyUndirected} {
		all.Union(e.Direction.Sources(k))
	}
	return all
}
