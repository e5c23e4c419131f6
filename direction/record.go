package direction

import (
	"errors"
	"fmt"
)

// Sentinel errors for direction record operations.
var (
	// ErrEmptyNode indicates a record was created with an empty node id.
	ErrEmptyNode = errors.New("direction: empty node identifier")

	// ErrNodeMismatch indicates two records do not reference the same
	// unordered node pair.
	ErrNodeMismatch = errors.New("direction: records reference different node pairs")

	// ErrIncompleteIDMap indicates a translation map is missing one of the
	// record's node identifiers.
	ErrIncompleteIDMap = errors.New("direction: incomplete identifier map")
)

// Key identifies one direction slot of a record relative to its canonical
// node order.
type Key int

const (
	// KeyNone is the absence of a direction: an invalid oriented pair, or a
	// majority tie.
	KeyNone Key = iota

	// KeyStraight is the first canonical node to the second.
	KeyStraight

	// KeyReverse is the second canonical node to the first.
	KeyReverse

	// KeyUndirected is an assertion carrying no direction.
	KeyUndirected
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyStraight:
		return "straight"
	case KeyReverse:
		return "reverse"
	case KeyUndirected:
		return "undirected"
	default:
		return "none"
	}
}

// Sign is the effect of a directed assertion.
type Sign int

const (
	// SignNone is the absence of an effect filter.
	SignNone Sign = iota

	// Positive is a stimulatory effect.
	Positive

	// Negative is an inhibitory effect.
	Negative
)

// String returns the sign name.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "none"
	}
}

// Record tracks, for one unordered node pair, which resources assert the
// interaction in each direction and with which sign. The zero value is not
// usable; construct records with New.
type Record struct {
	nodes   [2]string
	sources map[Key]Resources
	signs   map[Sign]map[Key]Resources
}

// New creates a record for the pair (a, b), canonicalized in first-seen
// order. Both identifiers must be non-empty.
func New(a, b string) (*Record, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyNode
	}
	return &Record{
		nodes: [2]string{a, b},
		sources: map[Key]Resources{
			KeyStraight:   make(Resources),
			KeyReverse:    make(Resources),
			KeyUndirected: make(Resources),
		},
		signs: map[Sign]map[Key]Resources{
			Positive: {KeyStraight: make(Resources), KeyReverse: make(Resources)},
			Negative: {KeyStraight: make(Resources), KeyReverse: make(Resources)},
		},
	}, nil
}

// Nodes returns the canonical node pair in first-seen order.
func (r *Record) Nodes() (string, string) {
	return r.nodes[0], r.nodes[1]
}

// KeyOf resolves an oriented pair against the canonical node order.
// Returns KeyNone when the pair does not reference this record's nodes.
func (r *Record) KeyOf(from, to string) Key {
	switch {
	case from == r.nodes[0] && to == r.nodes[1]:
		return KeyStraight
	case from == r.nodes[1] && to == r.nodes[0]:
		return KeyReverse
	default:
		return KeyNone
	}
}

// pairOf is the inverse of KeyOf for the two directed keys.
func (r *Record) pairOf(k Key) (string, string) {
	if k == KeyReverse {
		return r.nodes[1], r.nodes[0]
	}
	return r.nodes[0], r.nodes[1]
}

// SetDirection records that the given resources assert the interaction from
// one node to the other. Invalid oriented pairs and empty source sets are
// silent no-ops.
func (r *Record) SetDirection(from, to string, sources Resources) {
	key := r.KeyOf(from, to)
	if key == KeyNone || sources.Len() == 0 {
		return
	}
	r.sources[key].Union(sources)
}

// SetUndirected records an assertion carrying no direction. Empty source
// sets are silent no-ops.
func (r *Record) SetUndirected(sources Resources) {
	if sources.Len() == 0 {
		return
	}
	r.sources[KeyUndirected].Union(sources)
}

// SetSign records a signed assertion for the oriented pair. A signed
// assertion implies a directed one, so the direction sources are updated as
// well. Invalid pairs, SignNone, and empty source sets are silent no-ops.
func (r *Record) SetSign(from, to string, sign Sign, sources Resources) {
	key := r.KeyOf(from, to)
	if key == KeyNone || sign == SignNone || sources.Len() == 0 {
		return
	}
	r.SetDirection(from, to, sources)
	r.signs[sign][key].Union(sources)
}

// Asserted reports whether the key carries at least one source. A key is
// asserted exactly when its source set is non-empty.
func (r *Record) Asserted(k Key) bool {
	return r.sources[k].Len() > 0
}

// Sources returns a copy of the source set for the key, or nil for KeyNone.
func (r *Record) Sources(k Key) Resources {
	src, ok := r.sources[k]
	if !ok {
		return nil
	}
	return src.Clone()
}

// SourcesBetween returns a copy of the source set for the oriented pair, or
// nil when the pair does not reference this record's nodes.
func (r *Record) SourcesBetween(from, to string) Resources {
	return r.Sources(r.KeyOf(from, to))
}

// SignSources returns a copy of the source set backing the sign at the key,
// or nil for invalid combinations.
func (r *Record) SignSources(k Key, sign Sign) Resources {
	if k != KeyStraight && k != KeyReverse {
		return nil
	}
	byKey, ok := r.signs[sign]
	if !ok {
		return nil
	}
	return byKey[k].Clone()
}

// WhichDirections returns the directed keys whose source set intersects the
// given resources (or is simply non-empty when resources is empty). When
// effect is Positive or Negative the matching sign-source set is filtered
// the same way.
func (r *Record) WhichDirections(resources Resources, effect Sign) []Key {
	var out []Key
	for _, k := range []Key{KeyStraight, KeyReverse} {
		src := r.sources[k]
		if src.Len() == 0 {
			continue
		}
		if resources.Len() > 0 && !src.Intersects(resources) {
			continue
		}
		if effect != SignNone {
			ss := r.signs[effect][k]
			if ss.Len() == 0 {
				continue
			}
			if resources.Len() > 0 && !ss.Intersects(resources) {
				continue
			}
		}
		out = append(out, k)
	}
	return out
}

// IsDirected reports whether either directed key is asserted.
func (r *Record) IsDirected() bool {
	return r.Asserted(KeyStraight) || r.Asserted(KeyReverse)
}

// IsMutual reports whether both directed keys are asserted, optionally
// restricted to the given resources.
func (r *Record) IsMutual(resources Resources) bool {
	if resources.Len() == 0 {
		return r.Asserted(KeyStraight) && r.Asserted(KeyReverse)
	}
	return r.sources[KeyStraight].Intersects(resources) &&
		r.sources[KeyReverse].Intersects(resources)
}

// Merge unions another record describing the same unordered node pair into
// the receiver. Direction sources are remapped when the orientations differ.
// Sign sources are unioned only when both records share the same canonical
// orientation; cross-orientation sign merging is deliberately not performed.
func (r *Record) Merge(other *Record) error {
	if other == nil {
		return nil
	}
	sameOrientation := other.nodes == r.nodes
	flipped := other.nodes[0] == r.nodes[1] && other.nodes[1] == r.nodes[0]
	if !sameOrientation && !flipped {
		return fmt.Errorf("%w: (%s, %s) vs (%s, %s)", ErrNodeMismatch,
			r.nodes[0], r.nodes[1], other.nodes[0], other.nodes[1])
	}

	r.sources[KeyUndirected].Union(other.sources[KeyUndirected])
	if sameOrientation {
		r.sources[KeyStraight].Union(other.sources[KeyStraight])
		r.sources[KeyReverse].Union(other.sources[KeyReverse])
		for _, sign := range []Sign{Positive, Negative} {
			r.signs[sign][KeyStraight].Union(other.signs[sign][KeyStraight])
			r.signs[sign][KeyReverse].Union(other.signs[sign][KeyReverse])
		}
		return nil
	}
	r.sources[KeyStraight].Union(other.sources[KeyReverse])
	r.sources[KeyReverse].Union(other.sources[KeyStraight])
	return nil
}

// Translate produces a new record with every node reference rewritten
// through idMap. The map must cover both nodes.
func (r *Record) Translate(idMap map[string]string) (*Record, error) {
	na, ok := idMap[r.nodes[0]]
	if !ok {
		return nil, fmt.Errorf("%w: no mapping for %q", ErrIncompleteIDMap, r.nodes[0])
	}
	nb, ok := idMap[r.nodes[1]]
	if !ok {
		return nil, fmt.Errorf("%w: no mapping for %q", ErrIncompleteIDMap, r.nodes[1])
	}
	out, err := New(na, nb)
	if err != nil {
		return nil, err
	}
	for k, src := range r.sources {
		out.sources[k] = src.Clone()
	}
	for sign, byKey := range r.signs {
		for k, src := range byKey {
			out.signs[sign][k] = src.Clone()
		}
	}
	return out, nil
}

// Clone returns an independent deep copy of the record.
func (r *Record) Clone() *Record {
	out, _ := New(r.nodes[0], r.nodes[1])
	for k, src := range r.sources {
		out.sources[k] = src.Clone()
	}
	for sign, byKey := range r.signs {
		for k, src := range byKey {
			out.signs[sign][k] = src.Clone()
		}
	}
	return out
}

// Equal reports whether both records have the same canonical node order and
// identical source and sign sets.
func (r *Record) Equal(other *Record) bool {
	if other == nil || r.nodes != other.nodes {
		return false
	}
	for _, k := range []Key{KeyStraight, KeyReverse, KeyUndirected} {
		if !r.sources[k].Equal(other.sources[k]) {
			return false
		}
	}
	for _, sign := range []Sign{Positive, Negative} {
		for _, k := range []Key{KeyStraight, KeyReverse} {
			if !r.signs[sign][k].Equal(other.signs[sign][k]) {
				return false
			}
		}
	}
	return true
}
