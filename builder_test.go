package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjlist"
)

func TestPath(t *testing.T) {
	g, err := adjlist.Path([]int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge(2, 3))
	require.False(t, g.HasEdge(1, 3), "path must not connect non-consecutive vertices")
	require.Equal(t, 1, g.Degree(1), "path endpoints have degree 1")
	require.Equal(t, 2, g.Degree(2))
}

func TestPathTooFew(t *testing.T) {
	_, err := adjlist.Path([]int{1})
	require.ErrorIs(t, err, adjlist.ErrTooFewVertices)
}

func TestPathDuplicate(t *testing.T) {
	_, err := adjlist.Path([]int{1, 2, 1})
	require.ErrorIs(t, err, adjlist.ErrDuplicateVertex)
}

func TestCycle(t *testing.T) {
	g, err := adjlist.Cycle([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge("c", "a"), "cycle closes back to the first vertex")
	require.Equal(t, 2, g.Degree("b"), "every cycle vertex has degree 2")

	_, err = adjlist.Cycle([]string{"a", "b"})
	require.ErrorIs(t, err, adjlist.ErrTooFewVertices)
}

func TestCycleDirected(t *testing.T) {
	g, err := adjlist.Cycle([]int{1, 2, 3}, adjlist.WithDirected[int](true))
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge(3, 1))
	require.False(t, g.HasEdge(1, 3), "directed cycle goes one way")
}

func TestComplete(t *testing.T) {
	g, err := adjlist.Complete([]int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount(), "K4 has n(n-1)/2 edges")
	for _, v := range []int{1, 2, 3, 4} {
		require.Equal(t, 3, g.Degree(v), "every K4 vertex has degree n-1")
	}

	_, err = adjlist.Complete([]int{1})
	require.ErrorIs(t, err, adjlist.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := adjlist.Star(0, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, g.Degree(0))
	require.Equal(t, 1, g.Degree(2))
	require.False(t, g.HasEdge(1, 2), "leaves are not connected to each other")

	_, err = adjlist.Star(0, nil)
	require.ErrorIs(t, err, adjlist.ErrTooFewVertices)

	_, err = adjlist.Star(1, []int{1, 2})
	require.ErrorIs(t, err, adjlist.ErrDuplicateVertex, "center may not repeat among leaves")
}
