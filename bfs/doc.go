// Package bfs provides breadth-first search over a core.Graph together with
// the distance-derived metrics used when checking strongly regular graphs:
// eccentricity, diameter, connectivity and the distance distribution.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing edge
//     distance and returns a Result with Order, Depth and Parent.
//   - Hooks: WithOnVisit may abort the walk with an error.
//   - WithMaxDepth limits exploration (d>0) or disables the limit (d==0).
//   - Eccentricity, Diameter, Connected and DistanceProfile build on BFS.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours in vertex-index order, so the
//	visit sequence is reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS:      O(V + E) time, O(V) memory.
//   - Diameter: O(V·(V + E)).
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrDisconnected         when a metric is undefined on a disconnected graph.
//   - Wrapped OnVisit errors.
package bfs
