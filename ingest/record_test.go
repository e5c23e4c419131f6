package ingest

import (
	"errors"
	"testing"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
	"github.com/bionetkit/interactome/graph"
)

func TestRecordValidate(t *testing.T) {
	valid := Record{IDA: "P1", IDB: "P2", Resource: "SIGNOR"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cases := []struct {
		name string
		rec  Record
		want error
	}{
		{"missing id_a", Record{IDB: "P2", Resource: "SIGNOR"}, ErrMissingEndpoint},
		{"missing id_b", Record{IDA: "P1", Resource: "SIGNOR"}, ErrMissingEndpoint},
		{"missing resource", Record{IDA: "P1", IDB: "P2"}, ErrMissingResource},
	}
	for _, tc := range cases {
		if err := tc.rec.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: Validate() = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestRecordSources(t *testing.T) {
	rec := Record{Resource: "SIGNOR", SecondaryResources: []string{"SignaLink", ""}}
	got := rec.sources()
	if !got.Equal(direction.NewResources("SIGNOR", "SignaLink")) {
		t.Errorf("sources() = %v", got.Sorted())
	}
}

func TestRecordKinds(t *testing.T) {
	aliases := graph.DefaultKindAliases()

	rec := Record{KindA: "Protein", KindB: "microRNA"}
	kindA, kindB, err := rec.kinds(aliases)
	if err != nil {
		t.Fatalf("kinds: %v", err)
	}
	if kindA != graph.EntityProtein || kindB != graph.EntityMiRNA {
		t.Errorf("kinds = (%s, %s)", kindA, kindB)
	}

	// Absent labels default to unknown without error.
	kindA, kindB, err = Record{}.kinds(aliases)
	if err != nil || kindA != graph.EntityUnknown || kindB != graph.EntityUnknown {
		t.Errorf("kinds of empty labels = (%s, %s, %v)", kindA, kindB, err)
	}

	_, _, err = Record{KindA: "quux"}.kinds(aliases)
	if !errors.Is(err, ErrUnresolvableKind) {
		t.Errorf("err = %v, want ErrUnresolvableKind", err)
	}
}

func TestRecordEdgeAttrsFoldsReferences(t *testing.T) {
	rec := Record{
		References: []string{"12345", "67890"},
		EdgeAttrs:  attrs.Map{"mechanism": attrs.String("phosphorylation")},
	}
	got := rec.edgeAttrs()
	refs, ok := got["references"].(attrs.Set)
	if !ok {
		t.Fatalf("references = %T, want attrs.Set", got["references"])
	}
	if refs.Len() != 2 || !refs.Has(attrs.String("12345")) {
		t.Errorf("references = %v", refs.Values())
	}
	if !got["mechanism"].Equal(attrs.String("phosphorylation")) {
		t.Error("existing edge attrs lost")
	}
	// The record's own map is never mutated.
	if _, leaked := rec.EdgeAttrs["references"]; leaked {
		t.Error("edgeAttrs mutated the record")
	}

	plain := Record{EdgeAttrs: attrs.Map{"k": attrs.Number(1)}}
	if got := plain.edgeAttrs(); len(got) != 1 {
		t.Errorf("edgeAttrs without references = %v", got)
	}
}
