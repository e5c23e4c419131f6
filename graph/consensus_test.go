package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bionetkit/interactome/catalog"
	"github.com/bionetkit/interactome/direction"
	"github.com/bionetkit/interactome/graph"
)

func upsertNode(t *testing.T, s *graph.Store, id string) {
	t.Helper()
	ident, err := graph.NewIdentity(id)
	require.NoError(t, err)
	_, err = s.UpsertNode(ident, "", graph.EntityProtein, 9606, nil)
	require.NoError(t, err)
}

func TestResolveAnnotatesCategories(t *testing.T) {
	s := graph.NewStore()
	upsertNode(t, s, "P1")
	upsertNode(t, s, "P2")

	_, err := s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Type:        graph.InteractionPPI,
		Stimulation: true,
		Sources:     direction.NewResources("SIGNOR"),
	})
	require.NoError(t, err)
	_, err = s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Sources: direction.NewResources("BioGRID"),
	})
	require.NoError(t, err)

	r := graph.NewResolver(s, catalog.Default())
	got := r.Resolve()
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "P1", c.From)
	assert.Equal(t, "P2", c.To)
	assert.True(t, c.Directed)
	assert.Equal(t, direction.SignLabelPositive, c.Sign)
	assert.Equal(t, graph.InteractionPPI, c.Type)
	// Only the resources supporting the consensus direction appear, not the
	// undirected BioGRID assertion.
	assert.Equal(t, []string{"SIGNOR"}, c.Resources)
	assert.Equal(t, []string{string(catalog.CategoryActivityFlow)}, c.Categories)
}

func TestResolveUndirectedEdge(t *testing.T) {
	s := graph.NewStore()
	upsertNode(t, s, "P1")
	upsertNode(t, s, "P2")
	_, err := s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Sources: direction.NewResources("BioGRID", "IntAct"),
	})
	require.NoError(t, err)

	got := graph.NewResolver(s, catalog.Default()).Resolve()
	require.Len(t, got, 1)
	assert.False(t, got[0].Directed)
	assert.Equal(t, direction.SignLabelUnknown, got[0].Sign)
	assert.Equal(t, []string{"BioGRID", "IntAct"}, got[0].Resources)
	assert.Equal(t, []string{string(catalog.CategoryUndirectedPPI)}, got[0].Categories)
}

func TestResolveDirectionTieEmitsBothRows(t *testing.T) {
	s := graph.NewStore()
	upsertNode(t, s, "P1")
	upsertNode(t, s, "P2")
	_, err := s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Directed: true,
		Sources:  direction.NewResources("A"),
	})
	require.NoError(t, err)
	_, err = s.UpsertEdge("P2", "P1", graph.EdgeUpdate{
		Directed: true,
		Sources:  direction.NewResources("B"),
	})
	require.NoError(t, err)

	got := graph.NewResolver(s, nil).Resolve()
	require.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].From)
	assert.Equal(t, []string{"A"}, got[0].Resources)
	assert.Equal(t, "P2", got[1].From)
	assert.Equal(t, []string{"B"}, got[1].Resources)
	// A nil catalog disables annotation.
	assert.Nil(t, got[0].Categories)
}

func TestResourcesOfSpansAllKeys(t *testing.T) {
	s := graph.NewStore()
	upsertNode(t, s, "P1")
	upsertNode(t, s, "P2")
	eh, err := s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Directed: true,
		Sources:  direction.NewResources("A"),
	})
	require.NoError(t, err)
	_, err = s.UpsertEdge("P2", "P1", graph.EdgeUpdate{
		Directed: true,
		Sources:  direction.NewResources("B"),
	})
	require.NoError(t, err)
	_, err = s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Sources: direction.NewResources("C"),
	})
	require.NoError(t, err)

	got := graph.NewResolver(s, nil).ResourcesOf(eh)
	assert.Equal(t, []string{"A", "B", "C"}, got.Sorted())
}
