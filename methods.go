// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex/edge mutation and the query surface.
//
// Determinism:
//   - All enumeration-order guarantees derive from the sorted verts
//     slice and the ordered NeighborList contract.
//
// Policy:
//   - Absent vertices/edges answer with sentinels (false, 0, empty);
//     no query or mutation on this surface returns an error.

package adjlist

import "slices"

// ensure registers v as a vertex if absent and returns its neighbor
// container. Complexity: O(1) when present, O(V) worst case on insert.
func (g *Graph[V]) ensure(v V) NeighborList[V] {
	if list, ok := g.adj[v]; ok {
		return list
	}
	i, _ := slices.BinarySearch(g.verts, v)
	g.verts = slices.Insert(g.verts, i, v)
	list := g.newList()
	g.adj[v] = list

	return list
}

// AddVertex inserts v with no neighbors. Adding an existing vertex is a
// no-op (idempotent). Complexity: O(V) worst case (sorted insert).
func (g *Graph[V]) AddVertex(v V) {
	g.ensure(v)
}

// AddEdge records an edge between u and v with DefaultWeight,
// auto-adding missing endpoints. See AddWeightedEdge.
func (g *Graph[V]) AddEdge(u, v V) {
	g.AddWeightedEdge(u, v, DefaultWeight)
}

// AddWeightedEdge records an edge between u and v with the given
// weight, creating either endpoint as a vertex if absent. Re-adding an
// existing pair overwrites the previous weight; counts do not change.
//
// Undirected graphs store the edge under both endpoints, so callers
// cannot produce an asymmetric undirected edge through this method.
// Directed graphs store source→dest only; v still becomes a vertex.
// Self-loops are permitted and stored as a single entry.
//
// Complexity: O(deg) for the container insert, plus O(V) worst case
// when an endpoint vertex is new.
func (g *Graph[V]) AddWeightedEdge(u, v V, weight int64) {
	g.ensure(u).Set(v, weight)
	to := g.ensure(v)
	if !g.directed && u != v {
		to.Set(u, weight)
	}
}

// HasVertex reports whether v is a vertex of the graph. Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether an edge from u to v is recorded. For
// undirected graphs the symmetry invariant makes HasEdge(u, v) and
// HasEdge(v, u) agree. Complexity: O(log deg(u)).
func (g *Graph[V]) HasEdge(u, v V) bool {
	list, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = list.Get(v)

	return ok
}

// Weight returns the weight recorded for the edge u→v, or 0 when either
// vertex or the edge is absent. The zero sentinel cannot be told apart
// from an edge genuinely stored with weight 0 — use Lookup when the
// distinction matters. Complexity: O(log deg(u)).
func (g *Graph[V]) Weight(u, v V) int64 {
	w, _ := g.Lookup(u, v)

	return w
}

// Lookup returns the weight recorded for the edge u→v and whether the
// edge exists, resolving the Weight zero-sentinel ambiguity.
// Complexity: O(log deg(u)).
func (g *Graph[V]) Lookup(u, v V) (int64, bool) {
	list, ok := g.adj[u]
	if !ok {
		return 0, false
	}

	return list.Get(v)
}

// Degree returns the number of neighbors of v, or 0 when v is absent.
// For directed graphs this is the out-degree. Complexity: O(1).
func (g *Graph[V]) Degree(v V) int {
	list, ok := g.adj[v]
	if !ok {
		return 0
	}

	return list.Len()
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.verts) }

// EdgeCount returns the number of recorded edges by summing neighbor
// list sizes: halved for undirected graphs (every non-loop edge is
// mirrored), taken as-is for directed graphs. The undirected count
// relies on the symmetry invariant holding exactly.
//
// Note: an undirected self-loop occupies a single entry, so it
// contributes only half an edge to the halved total.
//
// Complexity: O(V).
func (g *Graph[V]) EdgeCount() int {
	entries := 0
	for _, list := range g.adj {
		entries += list.Len()
	}
	if g.directed {
		return entries
	}

	return entries / 2
}

// MinVertex returns the smallest vertex by V's ordering, or the zero
// value of V when the graph is empty. The zero value is ambiguous with
// a genuine zero-valued vertex; check VertexCount first when that
// matters. Complexity: O(1).
func (g *Graph[V]) MinVertex() V {
	if len(g.verts) == 0 {
		var zero V
		return zero
	}

	return g.verts[0]
}

// Clone returns a deep copy of the graph: same policy, same vertex set,
// same edges and weights, fully independent storage. The clone always
// uses the receiver's NeighborList factory. Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	out := &Graph[V]{
		directed: g.directed,
		newList:  g.newList,
		verts:    slices.Clone(g.verts),
		adj:      make(map[V]NeighborList[V], len(g.adj)),
	}
	for v, list := range g.adj {
		nl := out.newList()
		for i := 0; i < list.Len(); i++ {
			d, w := list.At(i)
			nl.Set(d, w)
		}
		out.adj[v] = nl
	}

	return out
}

// Detach transfers ownership of the receiver's storage to a freshly
// constructed graph and leaves the receiver empty but valid, preserving
// its policy and container factory. The counterpart of move
// construction. Complexity: O(1).
func (g *Graph[V]) Detach() *Graph[V] {
	out := &Graph[V]{
		directed: g.directed,
		newList:  g.newList,
		verts:    g.verts,
		adj:      g.adj,
	}
	g.verts = nil
	g.adj = make(map[V]NeighborList[V])

	return out
}

// Clear resets the graph to the empty state in place, preserving the
// policy flag and container factory. Complexity: O(1).
func (g *Graph[V]) Clear() {
	g.verts = nil
	g.adj = make(map[V]NeighborList[V])
}
