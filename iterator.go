// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: Cursor iterators over the vertex set and per-vertex neighbor
// lists.
//
// Contract:
//   - Scanner idiom: a fresh iterator sits before its first element;
//     call Next (or Prev on an exhausted one) before reading.
//   - Iterators are lazy, restartable (Reset) and bidirectional
//     (Next/Prev); they do not own or copy graph storage.
//   - Borrowing rule: an iterator is valid only while the graph is not
//     mutated. Mutating mid-iteration is caller misuse and is not
//     detected.

package adjlist

import (
	"cmp"
	"slices"
)

// VertexIter is a cursor over the graph's vertex set in ascending order
// of V (descending for iterators built by VerticesDesc). Each position
// exposes the vertex value and its neighbor sub-sequence.
type VertexIter[V cmp.Ordered] struct {
	g    *Graph[V]
	pos  int // index along iteration order; -1 before first, len after last
	desc bool
}

// Vertices returns a cursor over all vertices in ascending order,
// positioned before the first element. Complexity: O(1).
func (g *Graph[V]) Vertices() *VertexIter[V] {
	return &VertexIter[V]{g: g, pos: -1}
}

// VerticesDesc returns a cursor over all vertices in descending order,
// positioned before the first (largest) element. Complexity: O(1).
func (g *Graph[V]) VerticesDesc() *VertexIter[V] {
	return &VertexIter[V]{g: g, pos: -1, desc: true}
}

// Vertex returns an ascending cursor positioned at v, and whether v is
// a vertex of the graph. When v is absent the cursor is exhausted.
// Complexity: O(log V).
func (g *Graph[V]) Vertex(v V) (*VertexIter[V], bool) {
	i, ok := slices.BinarySearch(g.verts, v)
	if !ok {
		return &VertexIter[V]{g: g, pos: len(g.verts)}, false
	}

	return &VertexIter[V]{g: g, pos: i}, true
}

// idx maps the cursor position onto the ascending verts slice.
func (it *VertexIter[V]) idx() int {
	if it.desc {
		return len(it.g.verts) - 1 - it.pos
	}

	return it.pos
}

// Next advances the cursor and reports whether it now rests on a
// vertex. Once exhausted it keeps returning false until Prev or Reset.
func (it *VertexIter[V]) Next() bool {
	if it.pos < len(it.g.verts) {
		it.pos++
	}

	return it.pos < len(it.g.verts)
}

// Prev steps the cursor backward (against its iteration order) and
// reports whether it now rests on a vertex. Stepping back from the
// exhausted state lands on the final vertex.
func (it *VertexIter[V]) Prev() bool {
	if it.pos >= 0 {
		it.pos--
	}

	return it.pos >= 0
}

// Reset rewinds the cursor to before its first element.
func (it *VertexIter[V]) Reset() { it.pos = -1 }

// Value returns the vertex at the current position. Valid only after
// Next or Prev reported true; otherwise it panics.
func (it *VertexIter[V]) Value() V { return it.g.verts[it.idx()] }

// Adjacent returns a cursor over the current vertex's neighbors in
// ascending order. Valid only while the vertex cursor is positioned.
func (it *VertexIter[V]) Adjacent() *AdjIter[V] {
	return &AdjIter[V]{list: it.g.adj[it.Value()], pos: -1}
}

// AdjIter is a cursor over one vertex's (neighbor, weight) entries in
// ascending neighbor order. A cursor for an absent vertex is a valid
// empty sequence.
type AdjIter[V cmp.Ordered] struct {
	list NeighborList[V] // nil for an absent vertex
	pos  int
}

// Adjacent returns a cursor over v's neighbors, or an empty cursor when
// v is not a vertex. Complexity: O(1).
func (g *Graph[V]) Adjacent(v V) *AdjIter[V] {
	return &AdjIter[V]{list: g.adj[v], pos: -1}
}

// length is the entry count, tolerating the absent-vertex nil list.
func (it *AdjIter[V]) length() int {
	if it.list == nil {
		return 0
	}

	return it.list.Len()
}

// Next advances the cursor and reports whether it now rests on an
// entry.
func (it *AdjIter[V]) Next() bool {
	if it.pos < it.length() {
		it.pos++
	}

	return it.pos < it.length()
}

// Prev steps the cursor backward and reports whether it now rests on an
// entry.
func (it *AdjIter[V]) Prev() bool {
	if it.pos >= 0 {
		it.pos--
	}

	return it.pos >= 0
}

// Reset rewinds the cursor to before its first entry.
func (it *AdjIter[V]) Reset() { it.pos = -1 }

// Dest returns the neighbor vertex at the current position. Valid only
// after Next or Prev reported true.
func (it *AdjIter[V]) Dest() V {
	d, _ := it.list.At(it.pos)

	return d
}

// Weight returns the edge weight at the current position. Valid only
// after Next or Prev reported true.
func (it *AdjIter[V]) Weight() int64 {
	_, w := it.list.At(it.pos)

	return w
}

// SetWeight overwrites the weight of the current entry in place.
//
// Warning: on an undirected graph this touches only the direction the
// cursor is walking; the mirrored entry keeps its old weight, breaking
// the symmetry invariant. Prefer AddWeightedEdge to reweigh an
// undirected edge.
func (it *AdjIter[V]) SetWeight(weight int64) {
	it.list.SetWeightAt(it.pos, weight)
}
