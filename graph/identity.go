package graph

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyIdentity indicates an identity was built from an empty identifier
// or component list.
var ErrEmptyIdentity = errors.New("graph: empty identity")

// complexPrefix marks the canonical serialization of a composite identity.
const complexPrefix = "COMPLEX:"

// Identity is the canonical identity of a node: either a plain identifier
// (a UniProt accession, a miRBase id) or a composite identity representing a
// multi-molecule complex. Composite identities serialize deterministically
// so they participate in the same deduplication and merge machinery as plain
// ones.
type Identity struct {
	id         string
	components []string
}

// NewIdentity builds a plain identity from a canonical identifier.
func NewIdentity(id string) (Identity, error) {
	if id == "" {
		return Identity{}, ErrEmptyIdentity
	}
	return Identity{id: id}, nil
}

// ComplexIdentity builds a composite identity from component identifiers.
// Components are sorted, so the same complex always serializes to the same
// canonical string regardless of input order.
func ComplexIdentity(components ...string) (Identity, error) {
	if len(components) == 0 {
		return Identity{}, ErrEmptyIdentity
	}
	sorted := make([]string, 0, len(components))
	for _, c := range components {
		if c == "" {
			return Identity{}, ErrEmptyIdentity
		}
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)
	return Identity{
		id:         complexPrefix + strings.Join(sorted, "-"),
		components: sorted,
	}, nil
}

// String returns the canonical identifier used for deduplication.
func (i Identity) String() string { return i.id }

// IsComplex reports whether the identity is composite.
func (i Identity) IsComplex() bool { return len(i.components) > 0 }

// Components returns the sorted component identifiers of a composite
// identity, or nil for plain identities.
func (i Identity) Components() []string {
	if len(i.components) == 0 {
		return nil
	}
	out := make([]string, len(i.components))
	copy(out, i.components)
	return out
}

// IsZero reports whether the identity is the unusable zero value.
func (i Identity) IsZero() bool { return i.id == "" }
