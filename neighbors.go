// SPDX-License-Identifier: MIT
//
// File: neighbors.go
// Role: Default NeighborList implementation — a binary-searched sorted
// slice of (dest, weight) pairs.
//
// Determinism:
//   - Entries are kept sorted ascending by dest; At(i) enumerates in
//     that order.
//
// Complexity:
//   - Get O(log d), Set O(d) worst case (insert shift), At O(1),
//     where d is the number of entries.

package adjlist

import (
	"cmp"
	"slices"
)

// neighbor is one (dest, weight) entry of a sortedNeighbors list.
type neighbor[V cmp.Ordered] struct {
	dest   V
	weight int64
}

// sortedNeighbors keeps entries ascending by dest. Insertion shifts the
// tail; with no edge removal in the ADT the slice never shrinks, which
// keeps the representation compact and cache-friendly for iteration.
type sortedNeighbors[V cmp.Ordered] struct {
	entries []neighbor[V]
}

// NewSortedNeighbors returns the default NeighborList: a sorted slice
// with binary-search lookup. It is the factory installed by New unless
// WithNeighborLists overrides it.
func NewSortedNeighbors[V cmp.Ordered]() NeighborList[V] {
	return &sortedNeighbors[V]{}
}

// search locates dest, returning its index and whether it is present.
func (s *sortedNeighbors[V]) search(dest V) (int, bool) {
	return slices.BinarySearchFunc(s.entries, dest, func(e neighbor[V], d V) int {
		return cmp.Compare(e.dest, d)
	})
}

// Set stores or overwrites the weight for dest, preserving order.
func (s *sortedNeighbors[V]) Set(dest V, weight int64) {
	i, ok := s.search(dest)
	if ok {
		s.entries[i].weight = weight
		return
	}
	s.entries = slices.Insert(s.entries, i, neighbor[V]{dest: dest, weight: weight})
}

// Get returns the weight stored for dest, if any.
func (s *sortedNeighbors[V]) Get(dest V) (int64, bool) {
	i, ok := s.search(dest)
	if !ok {
		return 0, false
	}

	return s.entries[i].weight, true
}

// Len returns the number of entries.
func (s *sortedNeighbors[V]) Len() int { return len(s.entries) }

// At returns the i-th entry in ascending dest order.
func (s *sortedNeighbors[V]) At(i int) (V, int64) {
	e := s.entries[i]

	return e.dest, e.weight
}

// SetWeightAt overwrites the weight of the i-th entry.
func (s *sortedNeighbors[V]) SetWeightAt(i int, weight int64) {
	s.entries[i].weight = weight
}
