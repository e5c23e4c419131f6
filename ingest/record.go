package ingest

import (
	"errors"
	"fmt"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
	"github.com/bionetkit/interactome/graph"
)

// Sentinel errors for record validation. A rejected record is a local,
// recoverable condition: the batch skips it and continues.
var (
	// ErrMissingEndpoint indicates a record with an empty endpoint identifier.
	ErrMissingEndpoint = errors.New("ingest: missing endpoint identifier")

	// ErrMissingResource indicates a record naming no primary resource.
	ErrMissingResource = errors.New("ingest: missing resource name")

	// ErrUnresolvableKind indicates an endpoint entity kind that no alias
	// table entry resolves.
	ErrUnresolvableKind = errors.New("ingest: unresolvable entity kind")
)

// Record is one normalized interaction assertion from a resource parser.
// Identifiers arrive already normalized; the adapter performs no identifier
// mapping of its own.
type Record struct {
	// IDA and IDB are the canonical endpoint identifiers.
	IDA string
	IDB string

	// KindA and KindB are the entity-kind labels as the parser emitted
	// them; the adapter normalizes them through its alias table.
	KindA string
	KindB string

	// LabelA and LabelB are display labels (optional).
	LabelA string
	LabelB string

	// TaxonA and TaxonB are NCBI taxonomy identifiers.
	TaxonA int
	TaxonB int

	// Resource is the primary resource asserting the interaction.
	Resource string

	// SecondaryResources are resources providing this record via the
	// primary one.
	SecondaryResources []string

	// Type classifies the relationship (optional).
	Type graph.InteractionType

	// IsDirected marks the assertion as oriented from IDA to IDB.
	IsDirected bool

	// IsStimulation and IsInhibition carry the effect sign; either implies
	// a directed assertion.
	IsStimulation bool
	IsInhibition  bool

	// References are literature identifiers backing the assertion.
	References []string

	// NodeAttrsA, NodeAttrsB, and EdgeAttrs carry arbitrary per-resource
	// metadata merged through the attribute combinator.
	NodeAttrsA attrs.Map
	NodeAttrsB attrs.Map
	EdgeAttrs  attrs.Map
}

// Validate checks the parts of the contract the adapter cannot repair.
func (r Record) Validate() error {
	if r.IDA == "" || r.IDB == "" {
		return ErrMissingEndpoint
	}
	if r.Resource == "" {
		return ErrMissingResource
	}
	return nil
}

// sources derives the direction source set: the primary resource plus the
// secondary ones.
func (r Record) sources() direction.Resources {
	src := direction.NewResources(r.Resource)
	src.Add(r.SecondaryResources...)
	return src
}

// kinds normalizes both endpoint kind labels, failing when either label is
// present but resolves to nothing.
func (r Record) kinds(aliases graph.KindAliases) (graph.EntityKind, graph.EntityKind, error) {
	kindA, kindB := graph.EntityUnknown, graph.EntityUnknown
	if r.KindA != "" {
		k, ok := aliases.Normalize(r.KindA)
		if !ok {
			return "", "", fmt.Errorf("%w: %q", ErrUnresolvableKind, r.KindA)
		}
		kindA = k
	}
	if r.KindB != "" {
		k, ok := aliases.Normalize(r.KindB)
		if !ok {
			return "", "", fmt.Errorf("%w: %q", ErrUnresolvableKind, r.KindB)
		}
		kindB = k
	}
	return kindA, kindB, nil
}

// edgeAttrs folds the literature references into the record's edge
// attributes under the "references" key.
func (r Record) edgeAttrs() attrs.Map {
	if len(r.References) == 0 {
		return r.EdgeAttrs
	}
	out := make(attrs.Map, len(r.EdgeAttrs)+1)
	for k, v := range r.EdgeAttrs {
		out[k] = v
	}
	out["references"] = attrs.NewStringSet(r.References...)
	return out
}
