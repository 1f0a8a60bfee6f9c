// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Deterministic debug text rendering of a graph.
//
// Format (human inspection only, not a stable wire format):
//   - one token per vertex in ascending order, separated by spaces;
//   - each token is <vertex>(<neighbor>:<weight>,...) with neighbors in
//     ascending order and no trailing separator;
//   - an isolated vertex renders as <vertex>().

package adjlist

import (
	"fmt"
	"strings"
)

// String renders the graph in the debug text format above. There is no
// reverse parser; the output exists for logs, tests and quick
// inspection. Complexity: O(V + E).
func (g *Graph[V]) String() string {
	var sb strings.Builder
	for vi, v := range g.verts {
		if vi > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v(", v)
		list := g.adj[v]
		for i := 0; i < list.Len(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			d, w := list.At(i)
			fmt.Fprintf(&sb, "%v:%d", d, w)
		}
		sb.WriteByte(')')
	}

	return sb.String()
}
