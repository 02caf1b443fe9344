// Package core provides a small, thread-safe, in-memory simple Graph:
// undirected, unweighted, loop-free and without parallel edges.
//
// The Graph G = (V,E) keeps vertices in insertion order and assigns each a
// dense index 0..n-1, so numeric kernels (adjacency matrices, colour
// refinement, automorphism search) can work on integers while callers keep
// human-readable string IDs.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	Index(id string) (int, error)       // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) (edgeID string, err error) // O(1)
//	HasEdge(u, v string) bool                       // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d log d), sorted by vertex index
//	Degree(id string) (int, error)           // O(1)
//	Vertices() []string                      // O(V), insertion order
//	Edges() []*Edge                          // O(E), insertion order
//	VertexCount(), EdgeCount() int           // O(1)
//	AdjacencyBits() [][]bool                 // O(V²) index-based snapshot
//
//	// Cloning
//	Clone() *Graph                           // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – edge from a vertex to itself
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//
// Determinism: Vertices(), Edges() and NeighborIDs() never depend on map
// iteration order; building the same graph twice yields identical output.
package core
