package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjlist"
)

func TestNewFromWeighted(t *testing.T) {
	g := adjlist.NewFromWeighted([]adjlist.WeightedEdge[int]{
		{Source: 1, Dest: 2, Weight: 5},
		{Source: 2, Dest: 3, Weight: 1},
	})

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	require.EqualValues(t, 5, g.Weight(2, 1), "undirected construction mirrors edges")
}

func TestNewFromUnweighted(t *testing.T) {
	g := adjlist.NewFromUnweighted([]adjlist.UnweightedEdge[int]{
		{Source: 1, Dest: 2},
		{Source: 2, Dest: 3},
	})

	require.EqualValues(t, adjlist.DefaultWeight, g.Weight(1, 2))
	require.EqualValues(t, adjlist.DefaultWeight, g.Weight(3, 2))
	require.Equal(t, 2, g.EdgeCount())
}

func TestNewFromWeightedDirected(t *testing.T) {
	g := adjlist.NewFromWeighted([]adjlist.WeightedEdge[int]{
		{Source: 1, Dest: 2, Weight: 4},
	}, adjlist.WithDirected[int](true))

	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(2, 1), "directed construction must not mirror")
	require.True(t, g.HasVertex(2), "destination vertex must exist")
	require.Equal(t, 1, g.EdgeCount())
}

// link is a caller-supplied edge-shaped record; only the Edger method
// set matters for bulk construction.
type link struct {
	from, to string
	cost     int64
}

func (l link) Ends() (string, string) { return l.from, l.to }
func (l link) EdgeWeight() int64      { return l.cost }

func TestNewFromEdgesCustomType(t *testing.T) {
	g := adjlist.NewFromEdges[string]([]link{
		{from: "a", to: "b", cost: 3},
		{from: "b", to: "c", cost: 7},
	})

	require.Equal(t, 3, g.VertexCount())
	require.EqualValues(t, 3, g.Weight("b", "a"))
	require.EqualValues(t, 7, g.Weight("b", "c"))
}

func TestNewFromEdgesDuplicatePairOverwrites(t *testing.T) {
	g := adjlist.NewFromWeighted([]adjlist.WeightedEdge[int]{
		{Source: 1, Dest: 2, Weight: 5},
		{Source: 1, Dest: 2, Weight: 9},
	})

	require.EqualValues(t, 9, g.Weight(1, 2), "later descriptors overwrite earlier ones")
	require.Equal(t, 1, g.EdgeCount())
}

func TestWithNeighborLists(t *testing.T) {
	calls := 0
	factory := func() adjlist.NeighborList[int] {
		calls++
		return adjlist.NewSortedNeighbors[int]()
	}

	g := adjlist.New(adjlist.WithNeighborLists(factory))
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	require.Equal(t, g.VertexCount(), calls, "factory runs once per vertex")
	require.EqualValues(t, adjlist.DefaultWeight, g.Weight(3, 2), "behavior is unchanged with a custom factory")
}
