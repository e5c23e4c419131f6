package graph

import (
	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
)

// NodeHandle is a stable, generation-checked reference to a node slot.
// The zero value is invalid and never resolves.
type NodeHandle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle is the invalid zero value.
func (h NodeHandle) IsZero() bool { return h.gen == 0 }

// EdgeHandle is a stable, generation-checked reference to an edge slot.
// The zero value is invalid and never resolves.
type EdgeHandle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle is the invalid zero value.
func (h EdgeHandle) IsZero() bool { return h.gen == 0 }

// Node is one biological entity in the graph. Nodes are created on first
// upsert and accumulate attributes on every subsequent upsert of the same
// canonical identity.
type Node struct {
	// Identity is the canonical identity the node is deduplicated by.
	Identity Identity

	// Label is the human-readable display label.
	Label string

	// Kind classifies the entity.
	Kind EntityKind

	// Taxon is the NCBI taxonomy identifier of the organism.
	Taxon int

	// Attrs holds accumulated per-resource metadata.
	Attrs attrs.Map
}

// ID returns the canonical identifier string.
func (n *Node) ID() string { return n.Identity.String() }

// Edge is one relationship between two nodes. At most one edge exists per
// unordered node pair; multi-resource support lives inside the direction
// record and the attribute map, never in parallel edges.
type Edge struct {
	// Endpoints are the node identifiers in the direction record's
	// canonical (first-seen) order.
	Endpoints [2]string

	// Direction tracks per-resource direction and sign assertions.
	Direction *direction.Record

	// Type classifies the relationship.
	Type InteractionType

	// Attrs holds accumulated per-resource metadata.
	Attrs attrs.Map

	// handles mirror Endpoints as arena references, in the same order.
	handles [2]NodeHandle
}

// EdgeUpdate carries one record's contribution to an edge upsert.
type EdgeUpdate struct {
	// Type classifies the relationship; applied when the edge has no more
	// specific type yet.
	Type InteractionType

	// Directed marks the assertion as oriented from the first upsert
	// endpoint to the second.
	Directed bool

	// Stimulation and Inhibition set the effect sign; either implies a
	// directed assertion.
	Stimulation bool
	Inhibition  bool

	// Sources are the resources backing this assertion.
	Sources direction.Resources

	// Attrs are combined into the edge's attribute map.
	Attrs attrs.Map
}
