package core_test

import (
	"testing"

	"github.com/kvryabov/langreach/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	require.NoError(t, g.AddVertex("0"))
	require.Equal(t, 1, g.VertexCount())
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdgeBootstrapsEndpoints(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.True(t, g.HasVertex("0"))
	require.True(t, g.HasVertex("1"))
	require.True(t, g.HasEdge("0", "1"))
	require.Equal(t, 1, g.EdgeCount())

	_, err = g.AddEdge("0", "1", "")
	require.ErrorIs(t, err, core.ErrEmptyLabel)
}

func TestParallelEdgesAllowed(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", "b")
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.ElementsMatch(t, []string{"a", "b"}, g.Labels())
}

func TestTwoCyclesGraph(t *testing.T) {
	g := core.TwoCyclesGraph(3, 2, "a", "b")
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 7, g.EdgeCount())

	aEdges, bEdges := 0, 0
	for _, e := range g.Edges() {
		switch e.Label {
		case "a":
			aEdges++
		case "b":
			bEdges++
		}
	}
	require.Equal(t, 4, aEdges)
	require.Equal(t, 3, bEdges)

	neigh, err := g.NeighborEdges("0")
	require.NoError(t, err)
	require.Len(t, neigh, 2) // 0->1 (a) and 0->4 (b)

	_, err = g.NeighborEdges("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
