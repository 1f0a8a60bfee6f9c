// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Convenience constructors for common topologies.
//
// Contract:
//   - Vertices must be distinct; the shape functions reject duplicates
//     with ErrDuplicateVertex.
//   - Each shape states its minimum vertex count; violations return
//     ErrTooFewVertices.
//   - Edges are emitted in stable input order with DefaultWeight.
//   - Only sentinel errors are returned; the functions never panic on
//     valid slices.

package adjlist

import (
	"cmp"
	"fmt"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarLeaves    = 1
)

// distinct verifies that no vertex appears twice in verts.
func distinct[V cmp.Ordered](method string, verts []V) error {
	seen := make(map[V]struct{}, len(verts))
	for _, v := range verts {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%s: vertex %v: %w", method, v, ErrDuplicateVertex)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// Path builds the path graph over verts in input order: an edge between
// every pair of consecutive vertices. Requires at least 2 distinct
// vertices. Complexity: O(n) edges.
func Path[V cmp.Ordered](verts []V, opts ...Option[V]) (*Graph[V], error) {
	if len(verts) < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, len(verts), minPathNodes, ErrTooFewVertices)
	}
	if err := distinct(methodPath, verts); err != nil {
		return nil, err
	}

	g := New(opts...)
	for i := 1; i < len(verts); i++ {
		g.AddEdge(verts[i-1], verts[i])
	}

	return g, nil
}

// Cycle builds the cycle graph over verts in input order: the path plus
// a closing edge from the last vertex back to the first. Requires at
// least 3 distinct vertices. Complexity: O(n) edges.
func Cycle[V cmp.Ordered](verts []V, opts ...Option[V]) (*Graph[V], error) {
	if len(verts) < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, len(verts), minCycleNodes, ErrTooFewVertices)
	}
	if err := distinct(methodCycle, verts); err != nil {
		return nil, err
	}

	g := New(opts...)
	for i := 1; i < len(verts); i++ {
		g.AddEdge(verts[i-1], verts[i])
	}
	g.AddEdge(verts[len(verts)-1], verts[0])

	return g, nil
}

// Complete builds the complete graph over verts: an edge between every
// unordered pair, emitted in input order (i < j). Requires at least 2
// distinct vertices. Complexity: O(n²) edges.
func Complete[V cmp.Ordered](verts []V, opts ...Option[V]) (*Graph[V], error) {
	if len(verts) < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, len(verts), minCompleteNodes, ErrTooFewVertices)
	}
	if err := distinct(methodComplete, verts); err != nil {
		return nil, err
	}

	g := New(opts...)
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			g.AddEdge(verts[i], verts[j])
		}
	}

	return g, nil
}

// Star builds the star graph: an edge from center to every leaf, in
// input order. Requires at least 1 leaf, all vertices distinct
// (including the center). Complexity: O(n) edges.
func Star[V cmp.Ordered](center V, leaves []V, opts ...Option[V]) (*Graph[V], error) {
	if len(leaves) < minStarLeaves {
		return nil, fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, len(leaves), minStarLeaves, ErrTooFewVertices)
	}
	all := make([]V, 0, len(leaves)+1)
	all = append(all, center)
	all = append(all, leaves...)
	if err := distinct(methodStar, all); err != nil {
		return nil, err
	}

	g := New(opts...)
	for _, leaf := range leaves {
		g.AddEdge(center, leaf)
	}

	return g, nil
}
