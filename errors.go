// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for the topology constructors.
//
// The structural core itself never fails: absent vertices and edges
// answer with sentinels (false, 0, empty sequence). Only the bulk
// topology constructors validate their inputs, and they report
// violations through these sentinels wrapped with context.

package adjlist

import "errors"

var (
	// ErrTooFewVertices indicates a topology constructor received fewer
	// vertices than the shape requires.
	ErrTooFewVertices = errors.New("adjlist: too few vertices")

	// ErrDuplicateVertex indicates a topology constructor received the
	// same vertex twice; the shapes require distinct vertices.
	ErrDuplicateVertex = errors.New("adjlist: duplicate vertex")
)
