package attrs

import "fmt"

// MergeError reports an attribute combination with no defined result.
// It names both operand shapes so callers can see exactly which pair of
// values failed instead of losing data to a silent drop.
type MergeError struct {
	// KindA is the shape of the first operand.
	KindA Kind

	// KindB is the shape of the second operand.
	KindB Kind

	// Reason describes why the combination is undefined (optional).
	Reason string
}

// Error implements the error interface.
func (e *MergeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("attrs: cannot combine %s with %s: %s", e.KindA, e.KindB, e.Reason)
	}
	return fmt.Sprintf("attrs: cannot combine %s with %s", e.KindA, e.KindB)
}

// Tiebreak resolves two numeric values into one.
type Tiebreak func(a, b float64) float64

// Max is the default numeric tiebreak.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Min keeps the smaller of two numeric values.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Combine merges two attribute values of unknown semantic shape into one,
// using Max as the numeric tiebreak.
func Combine(a, b Value) (Value, error) {
	return CombineFunc(a, b, Max)
}

// Reduce combines any number of values left to right.
func Reduce(tiebreak Tiebreak, values ...Value) (Value, error) {
	var acc Value = Null{}
	for _, v := range values {
		merged, err := CombineFunc(acc, v, tiebreak)
		if err != nil {
			return nil, err
		}
		acc = merged
	}
	return acc, nil
}

// CombineFunc merges two attribute values with an explicit numeric tiebreak.
// The rules are ordered; the first matching rule wins:
//
//  1. Equal values are returned as-is; an absent value yields the other.
//  2. Two numerics resolve through the tiebreak. Two bools stay boolean.
//  3. A list and a set union as a set when every list element is scalar,
//     otherwise both are kept as one concatenated list.
//  4. Two lists union with order-preserving deduplication when all elements
//     are scalar, otherwise they concatenate without deduplication.
//  5. A set absorbs the other operand's elements (scalars as a single
//     element, maps by their keys).
//  6. Two maps merge recursively key by key.
//  7. Two distinct non-empty strings are preserved as a two-element set.
//  8. A list absorbs a numeric or non-empty scalar by appending it.
//  9. Values implementing Combinable (direction records) combine themselves.
// 10. Anything else is a *MergeError naming both operand shapes.
func CombineFunc(a, b Value, tiebreak Tiebreak) (Value, error) {
	if tiebreak == nil {
		tiebreak = Max
	}

	// Rule 1: absent values and equal values.
	if a == nil || a.Kind() == KindNull {
		if b == nil {
			return Null{}, nil
		}
		return b, nil
	}
	if b == nil || b.Kind() == KindNull {
		return a, nil
	}
	if a.Equal(b) {
		return a, nil
	}

	// Rule 2: numerics, with bools treated as 0/1.
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			r := tiebreak(an, bn)
			if a.Kind() == KindBool && b.Kind() == KindBool {
				return Bool(r != 0), nil
			}
			return Number(r), nil
		}
	}

	// Rules 3-5: list and set unions.
	switch av := a.(type) {
	case List:
		switch bv := b.(type) {
		case List:
			return combineLists(av, bv), nil
		case Set:
			return combineListSet(av, bv), nil
		case Map:
			return nil, &MergeError{KindA: KindList, KindB: KindMap}
		default:
			if !isScalar(b) {
				return nil, &MergeError{KindA: KindList, KindB: b.Kind()}
			}
			return appendScalar(av, b), nil
		}
	case Set:
		return combineSetAny(av, b)
	}
	if bv, ok := b.(Set); ok {
		return combineSetAny(bv, a)
	}
	if bv, ok := b.(List); ok {
		if !isScalar(a) {
			return nil, &MergeError{KindA: a.Kind(), KindB: KindList}
		}
		return appendScalar(bv, a), nil
	}

	// Rule 6: recursive map merge.
	if am, ok := a.(Map); ok {
		if bm, ok := b.(Map); ok {
			return combineMaps(am, bm, tiebreak)
		}
	}

	// Rule 7: distinct strings are both preserved.
	if as, ok := a.(String); ok {
		if bs, ok := b.(String); ok {
			if as == "" {
				return bs, nil
			}
			if bs == "" {
				return as, nil
			}
			return NewSet(as, bs)
		}
	}

	// Rules 9-10: self-combining values, then the undefined-pair error.
	if ac, ok := a.(Combinable); ok {
		return ac.CombineWith(b)
	}
	if bc, ok := b.(Combinable); ok {
		return bc.CombineWith(a)
	}
	return nil, &MergeError{KindA: a.Kind(), KindB: b.Kind()}
}

// CombineMaps merges b into a copy of a, key by key. Nil maps are treated as
// empty. The inputs are never mutated.
func CombineMaps(a, b Map, tiebreak Tiebreak) (Map, error) {
	return combineMaps(a, b, tiebreak)
}

func combineMaps(a, b Map, tiebreak Tiebreak) (Map, error) {
	out := make(Map, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, bv := range b {
		av, present := out[k]
		if !present {
			out[k] = bv
			continue
		}
		merged, err := CombineFunc(av, bv, tiebreak)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = merged
	}
	return out, nil
}

// combineLists unions two lists with order-preserving deduplication when all
// elements are hashable scalars, falling back to plain concatenation.
func combineLists(a, b List) List {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make(List, 0, len(a)+len(b))
	hashable := true
	for _, v := range append(append(List{}, a...), b...) {
		key, ok := scalarKey(v)
		if !ok {
			hashable = false
			break
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	if hashable {
		return out
	}
	merged := make(List, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

// combineListSet views the list as a set when every element is scalar; when
// that fails both operands are kept as one list.
func combineListSet(l List, s Set) Value {
	out := s.clone()
	for _, v := range l {
		if !out.Add(v) {
			merged := make(List, 0, len(l)+s.Len())
			merged = append(merged, l...)
			merged = append(merged, s.Values()...)
			return merged
		}
	}
	return out
}

// combineSetAny adds the other operand's elements into a copy of the set.
// Lists with non-scalar elements degrade to list concatenation rather than
// losing the elements.
func combineSetAny(s Set, other Value) (Value, error) {
	switch ov := other.(type) {
	case List:
		return combineListSet(ov, s), nil
	case Set:
		out := s.clone()
		for _, v := range ov.Values() {
			out.Add(v)
		}
		return out, nil
	case Map:
		out := s.clone()
		for k := range ov {
			out.Add(String(k))
		}
		return out, nil
	default:
		out := s.clone()
		if !out.Add(other) {
			return nil, &MergeError{KindA: KindSet, KindB: kindOf(other), Reason: "element is not scalar"}
		}
		return out, nil
	}
}

// appendScalar appends a numeric or non-empty scalar to the list; empty
// strings and nulls leave the list unchanged.
func appendScalar(l List, v Value) List {
	switch t := v.(type) {
	case Number, Bool:
		return append(append(List{}, l...), v)
	case String:
		if t == "" {
			return l
		}
		return append(append(List{}, l...), v)
	default:
		return l
	}
}

func isScalar(v Value) bool {
	_, ok := scalarKey(v)
	return ok
}

func numeric(v Value) (float64, bool) {
	switch t := v.(type) {
	case Number:
		return float64(t), true
	case Bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
