package attrs

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the semantic shape of a Value.
type Kind int

const (
	// KindNull is the absent value.
	KindNull Kind = iota

	// KindString is a scalar string.
	KindString

	// KindNumber is a scalar number.
	KindNumber

	// KindBool is a scalar boolean.
	KindBool

	// KindList is an ordered sequence of values.
	KindList

	// KindSet is an unordered collection of scalar values.
	KindSet

	// KindMap is a string-keyed collection of values.
	KindMap

	// KindDirection is a per-edge direction record embedded as an attribute.
	// The concrete type lives in the direction package and participates in
	// combination through the Combinable interface.
	KindDirection
)

// String returns the human-readable name of the kind, used in merge errors.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindDirection:
		return "direction"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one attribute value in the closed union of semantic shapes.
type Value interface {
	// Kind returns the semantic shape of the value.
	Kind() Kind

	// Equal reports whether the value is semantically equal to other.
	Equal(other Value) bool
}

// Combinable is implemented by values that define their own additive
// combination. Combine delegates to CombineWith when no generic rule applies,
// instead of probing for arbitrary operators.
type Combinable interface {
	Value

	// CombineWith merges other into the receiver and returns the result.
	CombineWith(other Value) (Value, error)
}

// Cloner is implemented by values whose deep copy cannot be derived from the
// union shapes alone. Clone consults it for KindDirection values.
type Cloner interface {
	Value

	// CloneValue returns a deep copy of the value.
	CloneValue() Value
}

// Null is the absent value.
type Null struct{}

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// Equal implements Value.
func (Null) Equal(other Value) bool {
	return other != nil && other.Kind() == KindNull
}

// String is a scalar string value.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Equal implements Value.
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

// Number is a scalar numeric value.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Equal implements Value.
func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

// Bool is a scalar boolean value.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Equal implements Value.
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

// List is an ordered sequence of values.
type List []Value

// Kind implements Value.
func (List) Kind() Kind { return KindList }

// Equal implements Value.
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i, v := range l {
		if !equal(v, o[i]) {
			return false
		}
	}
	return true
}

// Set is an unordered collection of scalar values. Elements are stored by
// their canonical scalar key; non-scalar values are not admissible.
type Set struct {
	elems map[string]Value
}

// NewSet builds a set from the given values. Non-scalar values are rejected.
func NewSet(values ...Value) (Set, error) {
	s := Set{elems: make(map[string]Value, len(values))}
	for _, v := range values {
		if !s.Add(v) {
			return Set{}, &MergeError{KindA: KindSet, KindB: kindOf(v), Reason: "set elements must be scalar"}
		}
	}
	return s, nil
}

// NewStringSet builds a set of scalar strings.
func NewStringSet(values ...string) Set {
	s := Set{elems: make(map[string]Value, len(values))}
	for _, v := range values {
		s.Add(String(v))
	}
	return s
}

// Kind implements Value.
func (Set) Kind() Kind { return KindSet }

// Add inserts a scalar value, reporting whether the value was admissible.
func (s *Set) Add(v Value) bool {
	key, ok := scalarKey(v)
	if !ok {
		return false
	}
	if s.elems == nil {
		s.elems = make(map[string]Value)
	}
	s.elems[key] = v
	return true
}

// Has reports whether the set contains the value.
func (s Set) Has(v Value) bool {
	key, ok := scalarKey(v)
	if !ok {
		return false
	}
	_, present := s.elems[key]
	return present
}

// Len returns the number of elements.
func (s Set) Len() int { return len(s.elems) }

// Values returns the elements in a deterministic order.
func (s Set) Values() []Value {
	keys := make([]string, 0, len(s.elems))
	for k := range s.elems {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Value, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.elems[k])
	}
	return out
}

// Equal implements Value.
func (s Set) Equal(other Value) bool {
	o, ok := other.(Set)
	if !ok || len(s.elems) != len(o.elems) {
		return false
	}
	for k := range s.elems {
		if _, present := o.elems[k]; !present {
			return false
		}
	}
	return true
}

func (s Set) clone() Set {
	out := Set{elems: make(map[string]Value, len(s.elems))}
	for k, v := range s.elems {
		out.elems[k] = v
	}
	return out
}

// Map is a string-keyed collection of values.
type Map map[string]Value

// Kind implements Value.
func (Map) Kind() Kind { return KindMap }

// Equal implements Value.
func (m Map) Equal(other Value) bool {
	o, ok := other.(Map)
	if !ok || len(m) != len(o) {
		return false
	}
	for k, v := range m {
		ov, present := o[k]
		if !present || !equal(v, ov) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the value. Nil is cloned to Null.
func Clone(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case List:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	case Set:
		return t.clone()
	case Map:
		out := make(Map, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	default:
		if c, ok := v.(Cloner); ok {
			return c.CloneValue()
		}
		return v
	}
}

// CloneMap returns a deep copy of an attribute map. Nil maps clone to nil.
func CloneMap(m Map) Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

// equal treats nil as Null so comparisons over optional values are total.
func equal(a, b Value) bool {
	if a == nil {
		return b == nil || b.Kind() == KindNull
	}
	if b == nil {
		return a.Kind() == KindNull
	}
	return a.Equal(b)
}

func kindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// scalarKey returns a canonical hash key for scalar values, and reports
// whether the value is scalar at all.
func scalarKey(v Value) (string, bool) {
	switch t := v.(type) {
	case String:
		return "s:" + string(t), true
	case Number:
		return "n:" + strconv.FormatFloat(float64(t), 'g', -1, 64), true
	case Bool:
		return "b:" + strconv.FormatBool(bool(t)), true
	case Null:
		return "z", true
	default:
		return "", false
	}
}
