package attrs

import "fmt"

// ToNative converts a value into plain Go types (string, float64, bool,
// []any, map[string]any) for consumers such as expression evaluators.
// Sets convert to deterministic-order slices. Values outside the union
// convert to their string form.
func ToNative(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case String:
		return string(t)
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	case List:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ToNative(e)
		}
		return out
	case Set:
		elems := t.Values()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = ToNative(e)
		}
		return out
	case Map:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = ToNative(e)
		}
		return out
	default:
		return fmt.Sprintf("%v", v)
	}
}

// MapToNative converts an attribute map into a plain map[string]any.
// Nil maps convert to an empty map so evaluators always see a map value.
func MapToNative(m Map) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = ToNative(v)
	}
	return out
}

// FromNative converts plain Go values (as produced by JSON or YAML decoding)
// into the closed union. Unsupported types are an error rather than a guess.
func FromNative(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null{}, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case []any:
		out := make(List, len(t))
		for i, e := range t {
			v, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		out := make(Map, len(t))
		for k, e := range t {
			v, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("attrs: unsupported native type %T", x)
	}
}
