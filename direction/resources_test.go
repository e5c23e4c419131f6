package direction

import "testing"

func TestResourcesBasics(t *testing.T) {
	r := NewResources("SIGNOR", "", "KEGG")
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2: empty names are skipped", r.Len())
	}
	if !r.Has("SIGNOR") || r.Has("") {
		t.Error("membership does not match inserted names")
	}

	r.Add("TRRUST")
	if !r.Has("TRRUST") {
		t.Error("Add did not insert the name")
	}

	got := r.Sorted()
	want := []string{"KEGG", "SIGNOR", "TRRUST"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted() = %v, want %v", got, want)
		}
	}
}

func TestResourcesSetOps(t *testing.T) {
	a := NewResources("A", "B")
	b := NewResources("B", "C")

	if !a.Intersects(b) {
		t.Error("sets sharing B should intersect")
	}
	if a.Intersects(NewResources("Z")) {
		t.Error("disjoint sets should not intersect")
	}
	if !a.Contains(NewResources("A")) || a.Contains(b) {
		t.Error("Contains does not match subset relation")
	}

	cp := a.Clone()
	cp.Union(b)
	if cp.Len() != 3 {
		t.Errorf("union size = %d, want 3", cp.Len())
	}
	if a.Len() != 2 {
		t.Error("Union on a clone must not mutate the original")
	}
	if !a.Equal(NewResources("B", "A")) {
		t.Error("Equal must ignore insertion order")
	}
}
