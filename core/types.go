// Package core defines the Graph, Edge and option types, sentinel errors,
// and the NewGraph constructor.
//
// A single sync.RWMutex guards all state; every exported method is safe for
// concurrent use.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
// From is always the endpoint that was added to the graph first.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint vertex IDs.
	From string
	To   string
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.index = make(map[string]int, n)
			g.ids = make([]string, 0, n)
			g.adj = make([]map[int]string, 0, n)
		}
	}
}

// Graph is a simple undirected graph with string vertex IDs.
//
// ids[i] is the ID of vertex i; index is its inverse. adj[i][j] holds the
// edge ID joining i and j and is mirrored in adj[j][i].
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64

	ids   []string
	index map[string]int
	adj   []map[int]string
	edges []*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1) unless WithCapacity pre-allocates.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[string]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
