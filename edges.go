// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: Edge descriptors and bulk (edge-list) construction.
//
// Determinism:
//   - Descriptor slices are consumed in order; later duplicates of the
//     same pair overwrite earlier weights (idempotent Set semantics).

package adjlist

import "cmp"

// WeightedEdge describes one weighted edge (source, dest, weight) for
// bulk construction. It is an immutable value; mutating a descriptor
// after construction has no effect on any graph built from it.
type WeightedEdge[V cmp.Ordered] struct {
	Source V
	Dest   V
	Weight int64
}

// Ends returns the descriptor endpoints.
func (e WeightedEdge[V]) Ends() (V, V) { return e.Source, e.Dest }

// EdgeWeight returns the descriptor weight.
func (e WeightedEdge[V]) EdgeWeight() int64 { return e.Weight }

// UnweightedEdge describes one edge (source, dest) whose weight
// defaults to DefaultWeight.
type UnweightedEdge[V cmp.Ordered] struct {
	Source V
	Dest   V
}

// Ends returns the descriptor endpoints.
func (e UnweightedEdge[V]) Ends() (V, V) { return e.Source, e.Dest }

// EdgeWeight returns DefaultWeight.
func (e UnweightedEdge[V]) EdgeWeight() int64 { return DefaultWeight }

// Edger is any edge-shaped value usable for bulk construction: it
// exposes a source, a destination, and a weight. Both descriptor types
// implement it; callers may load a graph from their own edge records
// without converting to descriptors first.
type Edger[V cmp.Ordered] interface {
	Ends() (source, dest V)
	EdgeWeight() int64
}

// NewFromEdges builds a Graph from any slice of edge-shaped values,
// routing every element through the graph's insertion policy: mirrored
// for undirected graphs, source→dest with destination-vertex creation
// for directed ones. Complexity: O(len(edges) · deg).
func NewFromEdges[V cmp.Ordered, E Edger[V]](edges []E, opts ...Option[V]) *Graph[V] {
	g := New(opts...)
	for _, e := range edges {
		u, v := e.Ends()
		g.AddWeightedEdge(u, v, e.EdgeWeight())
	}

	return g
}

// NewFromWeighted builds a Graph from weighted edge descriptors.
func NewFromWeighted[V cmp.Ordered](edges []WeightedEdge[V], opts ...Option[V]) *Graph[V] {
	return NewFromEdges(edges, opts...)
}

// NewFromUnweighted builds a Graph from unweighted edge descriptors;
// every edge gets DefaultWeight.
func NewFromUnweighted[V cmp.Ordered](edges []UnweightedEdge[V], opts ...Option[V]) *Graph[V] {
	return NewFromEdges(edges, opts...)
}
