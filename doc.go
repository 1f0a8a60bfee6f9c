// Package adjlist provides a generic, in-memory adjacency-list graph
// with undirected and directed variants sharing one representation and
// one API surface.
//
// The Graph G = (V,E) maps every vertex to an ordered list of
// (neighbor, weight) entries:
//
//   - Generic vertices: any cmp.Ordered value type (ints, strings, ...)
//   - Directed vs. undirected insertion policy (WithDirected)
//   - Integer edge weights; AddEdge defaults the weight to 1
//   - Deterministic iteration — vertices and neighbors always enumerate
//     in ascending order of the vertex type
//   - Bidirectional, restartable cursor iterators (VertexIter, AdjIter)
//   - Bulk construction from edge descriptor lists or any edge-shaped
//     slice via the Edger interface
//   - Pluggable inner neighbor container (WithNeighborLists)
//
// Why adjlist?
//
//   - Single type, one policy flag — no parallel directed/undirected
//     type hierarchies to keep in sync.
//   - Deterministic enumeration — stable output for tests and diffs.
//   - Pure Go, no runtime dependencies.
//
// Configuration Options (Option):
//
//	– WithDirected(directed bool)
//	    Selects the edge-insertion and edge-count policy.
//	    • Undirected graphs mirror every edge in both endpoints' lists
//	      and report EdgeCount as half the stored entry total.
//	    • Directed graphs store only source→dest and count each entry.
//
//	– WithNeighborLists(factory func() NeighborList[V])
//	    Swaps the per-vertex neighbor container. The default is a
//	    binary-searched sorted slice; callers with different complexity
//	    needs may plug their own ordered implementation.
//
// Core Methods:
//
//	// Mutation
//	AddVertex(v V)                        // O(V) worst case (sorted insert)
//	AddEdge(u, v V)                       // weight 1
//	AddWeightedEdge(u, v V, weight int64)
//
//	// Query
//	HasVertex(v V) bool                   // O(1)
//	HasEdge(u, v V) bool                  // O(log deg(u))
//	Weight(u, v V) int64                  // 0 when absent (sentinel)
//	Lookup(u, v V) (int64, bool)          // comma-ok alternative
//	Degree(v V) int                       // out-degree when directed
//	VertexCount() int                     // O(1)
//	EdgeCount() int                       // O(V)
//	MinVertex() V                         // zero value when empty
//
//	// Iteration
//	Vertices() *VertexIter[V]             // ascending
//	VerticesDesc() *VertexIter[V]         // descending
//	Vertex(v V) (*VertexIter[V], bool)    // positioned at v
//	Adjacent(v V) *AdjIter[V]             // empty when v absent
//
//	// Lifecycle
//	Clone() *Graph[V]                     // deep copy
//	Detach() *Graph[V]                    // move storage out, leave empty
//	Clear()                               // reset in place
//
// Absent vertices and edges never raise errors: queries answer false, 0,
// or an empty sequence. Weight cannot distinguish a missing edge from an
// edge stored with weight 0 — use Lookup when that matters. The graph is
// not safe for concurrent use; iterators borrow the graph's storage and
// must not outlive a mutation.
//
// Topology helpers Path, Cycle, Complete and Star build common shapes
// from a vertex slice and validate their inputs with sentinel errors.
package adjlist
