// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, configuration options, and constructors.
//
// Determinism:
//   - verts is kept sorted ascending at all times; every enumeration
//     surface derives its order from it.
//
// Invariants:
//   - HasVertex(v) == true  ⇔  v appears in verts  ⇔  adj[v] != nil.
//   - Undirected graphs hold every edge in both endpoints' lists with
//     equal weights; directed graphs hold source→dest only.

package adjlist

import "cmp"

// DefaultWeight is the weight assigned to edges added without an
// explicit weight (AddEdge, UnweightedEdge descriptors).
const DefaultWeight int64 = 1

// NeighborList is the per-vertex edge container: an ordered mapping from
// neighbor vertex to edge weight. Entries enumerate in ascending order
// of the neighbor; index-based access backs bidirectional iteration.
//
// Implementations must keep Set idempotent: setting an existing dest
// overwrites its weight without growing the list.
type NeighborList[V cmp.Ordered] interface {
	// Set stores or overwrites the weight for dest.
	Set(dest V, weight int64)
	// Get returns the weight for dest and whether the entry exists.
	Get(dest V) (int64, bool)
	// Len returns the number of entries.
	Len() int
	// At returns the i-th entry in ascending dest order; 0 <= i < Len().
	At(i int) (dest V, weight int64)
	// SetWeightAt overwrites the weight of the i-th entry in place.
	SetWeightAt(i int, weight int64)
}

// Option configures a Graph before first use.
type Option[V cmp.Ordered] func(*Graph[V])

// WithDirected selects the edge-insertion and edge-count policy
// (true = directed, false = undirected). The policy is fixed for the
// lifetime of the graph.
func WithDirected[V cmp.Ordered](directed bool) Option[V] {
	return func(g *Graph[V]) { g.directed = directed }
}

// WithNeighborLists replaces the factory for per-vertex neighbor
// containers. The factory runs once per vertex; the default builds a
// binary-searched sorted slice (NewSortedNeighbors).
func WithNeighborLists[V cmp.Ordered](factory func() NeighborList[V]) Option[V] {
	return func(g *Graph[V]) { g.newList = factory }
}

// Graph is an adjacency-list graph over vertices of any ordered value
// type V. The zero value is not usable; construct with New or one of
// the NewFrom constructors.
//
// Graph is not safe for concurrent use.
type Graph[V cmp.Ordered] struct {
	directed bool                   // insertion/count policy
	newList  func() NeighborList[V] // inner container factory

	verts []V                   // vertex set, ascending
	adj   map[V]NeighborList[V] // vertex → neighbor container
}

// New creates an empty Graph with the given options. By default the
// graph is undirected and stores neighbors in sorted slices.
// Complexity: O(len(opts)).
func New[V cmp.Ordered](opts ...Option[V]) *Graph[V] {
	g := &Graph[V]{
		newList: NewSortedNeighbors[V],
		adj:     make(map[V]NeighborList[V]),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDirected creates an empty directed Graph. Equivalent to
// New(WithDirected(true), opts...); later options are applied after the
// directed flag and may not unset it accidentally unless they do so
// explicitly.
func NewDirected[V cmp.Ordered](opts ...Option[V]) *Graph[V] {
	directed := make([]Option[V], 0, len(opts)+1)
	directed = append(directed, WithDirected[V](true))
	directed = append(directed, opts...)

	return New(directed...)
}

// Directed reports whether the graph uses the directed insertion and
// edge-count policy. O(1).
func (g *Graph[V]) Directed() bool { return g.directed }
