// Package core: Graph method implementations.
//
// Vertices live in a dense index space (insertion order) and adjacency is a
// slice of per-vertex maps keyed by neighbour index, so existence checks,
// insertion and degree queries are O(1).

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty; re-adding an existing ID is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex returns the index of id, inserting it if absent.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = i
	g.adj = append(g.adj, make(map[int]string))

	return i
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Index returns the dense index of vertex id (its insertion position).
func (g *Graph) Index(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrVertexNotFound)
	}

	return i, nil
}

// VertexAt returns the ID of the vertex with dense index i.
func (g *Graph) VertexAt(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.ids) {
		return "", fmt.Errorf("VertexAt(%d): %w", i, ErrVertexNotFound)
	}

	return g.ids[i], nil
}

// AddEdge joins u and v with an undirected edge and returns its ID.
// Missing endpoints are added first (in the order u, v).
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (string, error) {
	// 1) Input validation
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Simple-graph constraints
	if u == v {
		return "", fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Ensure both endpoints exist (idempotent)
	iu, iv := g.ensureVertex(u), g.ensureVertex(v)
	if _, dup := g.adj[iu][iv]; dup {
		return "", fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	// 4) Allocate ID and store, mirrored in both adjacency rows
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	from, to := u, v
	if iv < iu {
		from, to = v, u
	}
	g.edges = append(g.edges, &Edge{ID: eid, From: from, To: to})
	g.adj[iu][iv] = eid
	g.adj[iv][iu] = eid

	return eid, nil
}

// HasEdge reports whether u and v are adjacent. Unknown IDs yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	iu, ok := g.index[u]
	if !ok {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	_, ok = g.adj[iu][iv]

	return ok
}

// NeighborIDs returns the IDs adjacent to id, ordered by vertex index.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	idx, err := g.neighborIndices(id)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(idx))
	for k, j := range idx {
		out[k] = g.ids[j]
	}

	return out, nil
}

// neighborIndices returns the sorted neighbour indices of id.
func (g *Graph) neighborIndices(id string) ([]int, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	out := make([]int, 0, len(g.adj[i]))
	for j := range g.adj[i] {
		out = append(out, j)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	return len(g.adj[i]), nil
}

// Vertices returns all vertex IDs in insertion (index) order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.ids...)
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		cp := *e
		out[i] = &cp
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AdjacencyBits returns an n×n boolean adjacency snapshot indexed by vertex
// index. The result is owned by the caller.
// Complexity: O(V² + E).
func (g *Graph) AdjacencyBits() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := len(g.ids)
	flat := make([]bool, n*n)
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = flat[i*n : (i+1)*n : (i+1)*n]
		for j := range g.adj[i] {
			out[i][j] = true
		}
	}

	return out
}

// NeighborLists returns, for every vertex index, its sorted neighbour indices.
// Complexity: O(V + E log Δ).
func (g *Graph) NeighborLists() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][]int, len(g.ids))
	for i, row := range g.adj {
		nb := make([]int, 0, len(row))
		for j := range row {
			nb = append(nb, j)
		}
		sort.Ints(nb)
		out[i] = nb
	}

	return out
}

// Clone returns a deep copy with identical vertex order, edges and edge IDs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		nextEdgeID: g.nextEdgeID,
		ids:        append([]string(nil), g.ids...),
		index:      make(map[string]int, len(g.index)),
		adj:        make([]map[int]string, len(g.adj)),
		edges:      make([]*Edge, len(g.edges)),
	}
	for id, i := range g.index {
		c.index[id] = i
	}
	for i, row := range g.adj {
		cp := make(map[int]string, len(row))
		for j, eid := range row {
			cp[j] = eid
		}
		c.adj[i] = cp
	}
	for i, e := range g.edges {
		cp := *e
		c.edges[i] = &cp
	}

	return c
}
