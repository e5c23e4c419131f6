package graph

import (
	"errors"
	"testing"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
)

func TestCollapseDuplicatesByID(t *testing.T) {
	s := NewStore()
	primary := addNode(t, s, "P1", 0, attrs.Map{"x": attrs.Number(1)})
	dup := addNode(t, s, "TMP", 9606, attrs.Map{"x": attrs.Number(2)})
	if err := s.SetNodeIdentity(dup, ident(t, "P1")); err != nil {
		t.Fatalf("SetNodeIdentity: %v", err)
	}

	m := NewMerger(s, nil)
	merged, err := m.CollapseDuplicatesByID()
	if err != nil {
		t.Fatalf("CollapseDuplicatesByID: %v", err)
	}
	if merged != 1 {
		t.Errorf("merged = %d, want 1", merged)
	}
	if s.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", s.NodeCount())
	}

	n := s.NodeAt(primary)
	if n == nil {
		t.Fatal("primary node lost: the lowest creation order must survive")
	}
	if !n.Attrs["x"].Equal(attrs.Number(2)) {
		t.Errorf("x = %v, want 2 under max tiebreak", n.Attrs["x"])
	}
	if n.Taxon != 9606 {
		t.Error("zero taxon not filled from the duplicate")
	}
	if s.NodeAt(dup) != nil {
		t.Error("duplicate handle still resolves")
	}
}

func TestCollapseNoDuplicatesIsNoOp(t *testing.T) {
	s := NewStore()
	addNode(t, s, "P1", 0, nil)
	addNode(t, s, "P2", 0, nil)

	merged, err := NewMerger(s, nil).CollapseDuplicatesByID()
	if err != nil {
		t.Fatalf("CollapseDuplicatesByID: %v", err)
	}
	if merged != 0 || s.NodeCount() != 2 {
		t.Errorf("merged = %d, NodeCount = %d, want no changes", merged, s.NodeCount())
	}
}

func TestCollapseRedirectsEdges(t *testing.T) {
	s := NewStore()
	addNode(t, s, "A", 0, nil)
	hb := addNode(t, s, "B", 0, nil)
	addNode(t, s, "C", 0, nil)
	_, _ = s.UpsertEdge("A", "C", EdgeUpdate{Directed: true, Sources: direction.NewResources("R1")})
	_, _ = s.UpsertEdge("B", "C", EdgeUpdate{Directed: true, Sources: direction.NewResources("R2")})
	if err := s.SetNodeIdentity(hb, ident(t, "A")); err != nil {
		t.Fatalf("SetNodeIdentity: %v", err)
	}

	if _, err := NewMerger(s, nil).CollapseDuplicatesByID(); err != nil {
		t.Fatalf("CollapseDuplicatesByID: %v", err)
	}

	if s.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want the redirected edge folded into the survivor", s.EdgeCount())
	}
	eh, ok := s.EdgeBetween("A", "C")
	if !ok {
		t.Fatal("surviving edge not indexed")
	}
	rec := s.EdgeAt(eh).Direction
	want := direction.NewResources("R1", "R2")
	if got := rec.SourcesBetween("A", "C"); !got.Equal(want) {
		t.Errorf("A->C sources = %v, want %v", got.Sorted(), want.Sorted())
	}
}

func TestMergeNodesSkipsSelfLoops(t *testing.T) {
	s := NewStore()
	ha := addNode(t, s, "A", 0, nil)
	hb := addNode(t, s, "B", 0, nil)
	_, _ = s.UpsertEdge("A", "B", EdgeUpdate{Sources: direction.NewResources("R")})

	if err := NewMerger(s, nil).MergeNodes([]NodeHandle{ha, hb}, ha); err != nil {
		t.Fatalf("MergeNodes: %v", err)
	}
	// Redirecting (A, B) onto A would be a self-loop; it is dropped instead.
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", s.EdgeCount())
	}
	if s.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", s.NodeCount())
	}
}

func TestMergeNodesZeroPrimaryPicksOldest(t *testing.T) {
	s := NewStore()
	ha := addNode(t, s, "A", 0, nil)
	hb := addNode(t, s, "B", 0, nil)

	if err := NewMerger(s, nil).MergeNodes([]NodeHandle{hb, ha}, NodeHandle{}); err != nil {
		t.Fatalf("MergeNodes: %v", err)
	}
	if s.NodeAt(ha) == nil {
		t.Error("lowest creation order must be selected as primary")
	}
	if s.NodeAt(hb) != nil {
		t.Error("non-primary node must be deleted")
	}
}

func TestMergeNodesAttrConflict(t *testing.T) {
	s := NewStore()
	ha := addNode(t, s, "A", 0, attrs.Map{"k": attrs.String("v")})
	hb := addNode(t, s, "B", 0, attrs.Map{"k": attrs.Map{"n": attrs.Number(1)}})

	err := NewMerger(s, nil).MergeNodes([]NodeHandle{ha, hb}, ha)
	var merr *attrs.MergeError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *attrs.MergeError in chain", err)
	}
	// Both nodes survive a failed merge.
	if s.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", s.NodeCount())
	}
}

func TestMergeNodesStaleHandle(t *testing.T) {
	s := NewStore()
	ha := addNode(t, s, "A", 0, nil)
	hb := addNode(t, s, "B", 0, nil)
	if err := s.DeleteNode(hb); err != nil {
		t.Fatalf("DeleteNode: %v", err)
	}

	err := NewMerger(s, nil).MergeNodes([]NodeHandle{ha, hb}, ha)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestCopyEdgesRetainsOriginals(t *testing.T) {
	s := NewStore()
	ha := addNode(t, s, "A", 0, nil)
	hb := addNode(t, s, "B", 0, nil)
	addNode(t, s, "C", 0, nil)
	_, _ = s.UpsertEdge("A", "C", EdgeUpdate{
		Type:     InteractionPPI,
		Directed: true,
		Sources:  direction.NewResources("R1"),
		Attrs:    attrs.Map{"w": attrs.Number(0.5)},
	})

	if err := NewMerger(s, nil).CopyEdges([]NodeHandle{ha}, hb, false); err != nil {
		t.Fatalf("CopyEdges: %v", err)
	}

	if _, ok := s.EdgeBetween("A", "C"); !ok {
		t.Error("original edge must be retained without move")
	}
	eh, ok := s.EdgeBetween("B", "C")
	if !ok {
		t.Fatal("redirected edge missing")
	}
	e := s.EdgeAt(eh)
	if e.Type != InteractionPPI {
		t.Errorf("Type = %s, want ppi carried over", e.Type)
	}
	if got := e.Direction.SourcesBetween("B", "C"); !got.Equal(direction.NewResources("R1")) {
		t.Errorf("B->C sources = %v, want {R1}", got.Sorted())
	}
	if !e.Attrs["w"].Equal(attrs.Number(0.5)) {
		t.Error("attributes not copied onto the redirected edge")
	}
}

func TestCopyEdgesPreservesOrientation(t *testing.T) {
	s := NewStore()
	addNode(t, s, "C", 0, nil)
	ha := addNode(t, s, "A", 0, nil)
	hb := addNode(t, s, "B", 0, nil)
	// A sits in the second endpoint slot here.
	_, _ = s.UpsertEdge("C", "A", EdgeUpdate{Directed: true, Sources: direction.NewResources("R1")})

	if err := NewMerger(s, nil).CopyEdges([]NodeHandle{ha}, hb, true); err != nil {
		t.Fatalf("CopyEdges: %v", err)
	}

	eh, ok := s.EdgeBetween("C", "B")
	if !ok {
		t.Fatal("redirected edge missing")
	}
	// The assertion was C->A, so the redirected record must read C->B.
	rec := s.EdgeAt(eh).Direction
	if got := rec.SourcesBetween("C", "B"); !got.Equal(direction.NewResources("R1")) {
		t.Errorf("C->B sources = %v, want {R1}", got.Sorted())
	}
	if rec.Asserted(direction.KeyReverse) {
		t.Error("redirection flipped the asserted orientation")
	}
}
