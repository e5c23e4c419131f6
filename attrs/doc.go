// Package attrs provides the attribute value model and the generic
// attribute-combination algorithm used when two records describing the same
// entity are unified.
//
// Attribute values form a closed union of semantic shapes:
//
//   - Null: the absent value
//   - String, Number, Bool: scalars
//   - List: an ordered sequence of values
//   - Set: an unordered collection of scalar values
//   - Map: a string-keyed collection of values
//
// Types outside the union can participate in combination by implementing the
// Combinable interface; the direction package uses this to let per-edge
// direction records live inside attribute maps.
//
// # Combination
//
// Combine merges two values of unknown semantic shape into one. The rules are
// ordered and total over the union: equal values are idempotent, numeric
// values resolve through a tiebreak function (maximum by default), container
// shapes union where possible, and distinct scalar strings are preserved as a
// two-element set rather than discarded. Pairs with no defined combination
// surface a *MergeError naming both operand shapes; data is never silently
// dropped.
//
//	merged, err := attrs.Combine(attrs.Number(1), attrs.Number(2))
//	// merged == attrs.Number(2)
//
// More than two inputs reduce left to right:
//
//	merged, err := attrs.Reduce(attrs.Max, a, b, c)
package attrs
