package direction

import "github.com/bionetkit/interactome/attrs"

// Attr adapts a Record to the attribute value union so direction records can
// live inside attribute maps and merge through the combinator.
type Attr struct {
	Record *Record
}

// Kind implements attrs.Value.
func (Attr) Kind() attrs.Kind { return attrs.KindDirection }

// Equal implements attrs.Value.
func (a Attr) Equal(other attrs.Value) bool {
	o, ok := other.(Attr)
	return ok && a.Record != nil && a.Record.Equal(o.Record)
}

// CombineWith implements attrs.Combinable. Two direction records referencing
// the same unordered node pair merge in place; anything else is an undefined
// combination.
func (a Attr) CombineWith(other attrs.Value) (attrs.Value, error) {
	o, ok := other.(Attr)
	if !ok {
		return nil, &attrs.MergeError{KindA: attrs.KindDirection, KindB: other.Kind()}
	}
	if err := a.Record.Merge(o.Record); err != nil {
		return nil, &attrs.MergeError{KindA: attrs.KindDirection, KindB: attrs.KindDirection, Reason: err.Error()}
	}
	return a, nil
}

// CloneValue implements attrs.Cloner.
func (a Attr) CloneValue() attrs.Value {
	if a.Record == nil {
		return Attr{}
	}
	return Attr{Record: a.Record.Clone()}
}
