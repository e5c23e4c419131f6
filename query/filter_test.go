package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
	"github.com/bionetkit/interactome/graph"
	"github.com/bionetkit/interactome/query"
)

// testStore holds one directed signaling edge and one cross-species
// undirected edge.
func testStore(t *testing.T) *graph.Store {
	t.Helper()
	s := graph.NewStore()
	for _, n := range []struct {
		id    string
		taxon int
	}{
		{"P1", 9606}, {"P2", 9606}, {"M1", 10090},
	} {
		ident, err := graph.NewIdentity(n.id)
		require.NoError(t, err)
		_, err = s.UpsertNode(ident, "", graph.EntityProtein, n.taxon, nil)
		require.NoError(t, err)
	}

	_, err := s.UpsertEdge("P1", "P2", graph.EdgeUpdate{
		Type:     graph.InteractionPPI,
		Directed: true,
		Sources:  direction.NewResources("SIGNOR"),
		Attrs:    attrs.Map{"weight": attrs.Number(0.9)},
	})
	require.NoError(t, err)
	_, err = s.UpsertEdge("P1", "M1", graph.EdgeUpdate{
		Sources: direction.NewResources("BioGRID"),
		Attrs:   attrs.Map{"weight": attrs.Number(0.2)},
	})
	require.NoError(t, err)
	return s
}

func TestSelectByResource(t *testing.T) {
	s := testStore(t)
	f, err := query.Compile(`"SIGNOR" in resources`)
	require.NoError(t, err)

	got, err := f.Select(s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, [2]string{"P1", "P2"}, s.EdgeAt(got[0]).Endpoints)
}

func TestSelectByDirectionAndType(t *testing.T) {
	s := testStore(t)

	f, err := query.Compile(`directed && type == "ppi"`)
	require.NoError(t, err)
	got, err := f.Select(s)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	f, err = query.Compile(`!directed`)
	require.NoError(t, err)
	got, err = f.Select(s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, [2]string{"P1", "M1"}, s.EdgeAt(got[0]).Endpoints)
}

func TestSelectByTaxonAndAttrs(t *testing.T) {
	s := testStore(t)

	f, err := query.Compile(`taxon_a == 9606 && taxon_b == 9606`)
	require.NoError(t, err)
	got, err := f.Select(s)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	f, err = query.Compile(`attrs["weight"] >= 0.5`)
	require.NoError(t, err)
	got, err = f.Select(s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, [2]string{"P1", "P2"}, s.EdgeAt(got[0]).Endpoints)
}

func TestSelectMatchesNothing(t *testing.T) {
	s := testStore(t)
	f, err := query.Compile(`id_a == "NOPE"`)
	require.NoError(t, err)
	got, err := f.Select(s)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCompileRejectsNonBoolean(t *testing.T) {
	_, err := query.Compile(`id_a`)
	assert.ErrorIs(t, err, query.ErrNotBoolean)
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	_, err := query.Compile(`directed &&`)
	assert.Error(t, err)

	_, err = query.Compile(`no_such_variable == 1`)
	assert.Error(t, err)
}

func TestMatchView(t *testing.T) {
	f, err := query.Compile(`mutual || "KEGG" in resources`)
	require.NoError(t, err)

	ok, err := f.Match(map[string]any{
		"id_a": "P1", "id_b": "P2", "type": "ppi",
		"directed": true, "mutual": false,
		"resources": []string{"KEGG"},
		"taxon_a":   9606, "taxon_b": 9606,
		"attrs": map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, ok)
}
