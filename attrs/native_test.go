package attrs

import (
	"reflect"
	"testing"
)

func TestToNative(t *testing.T) {
	got := MapToNative(Map{
		"s":   String("x"),
		"n":   Number(1.5),
		"b":   Bool(true),
		"nul": Null{},
		"l":   List{Number(1), String("a")},
		"set": NewStringSet("b", "a"),
		"m":   Map{"k": Number(2)},
	})
	want := map[string]any{
		"s":   "x",
		"n":   1.5,
		"b":   true,
		"nul": nil,
		"l":   []any{1.0, "a"},
		"set": []any{"a", "b"},
		"m":   map[string]any{"k": 2.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapToNative = %#v, want %#v", got, want)
	}

	if out := MapToNative(nil); out == nil || len(out) != 0 {
		t.Errorf("MapToNative(nil) = %#v, want empty map", out)
	}
}

func TestFromNativeRoundTrip(t *testing.T) {
	v, err := FromNative(map[string]any{
		"n": 1,
		"l": []any{"a", true},
	})
	if err != nil {
		t.Fatalf("FromNative: %v", err)
	}
	m, ok := v.(Map)
	if !ok {
		t.Fatalf("got %T, want Map", v)
	}
	if !m["n"].Equal(Number(1)) {
		t.Errorf("n = %v", m["n"])
	}
	if !m["l"].Equal(List{String("a"), Bool(true)}) {
		t.Errorf("l = %v", m["l"])
	}

	if _, err := FromNative(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}
