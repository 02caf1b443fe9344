// SPDX-License-Identifier: MIT
// Package matrix - adjacency export from core.Graph.
//
// Row/column i corresponds to the vertex with core index i, so the matrix
// order matches Graph.Vertices() exactly and is stable across runs.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// AdjacencyMatrix wraps a 0/1 Dense adjacency matrix of a simple graph.
// VertexIndex maps vertex ID → row/col; vertexByIndex is the reverse lookup.
type AdjacencyMatrix struct {
	Mat           *Dense
	VertexIndex   map[string]int
	vertexByIndex []string
}

// NewAdjacencyMatrix builds the symmetric 0/1 adjacency matrix of g.
// Implementation:
//   - Stage 1: validate input graph (ErrGraphNil, ErrInvalidDimensions for |V|=0).
//   - Stage 2: allocate n×n Dense and write 1 at (u,v) and (v,u) per edge.
//
// Complexity: O(V² + E).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(opAdj, ErrGraphNil)
	}
	ids := g.Vertices()
	mat, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, matrixErrorf(opAdj, err)
	}
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	n := len(ids)
	for _, e := range g.Edges() {
		u, okU := idx[e.From]
		v, okV := idx[e.To]
		if !okU || !okV {
			return nil, matrixErrorf(opAdj, fmt.Errorf("edge %s: %w", e.ID, ErrOutOfRange))
		}
		mat.data[u*n+v] = 1
		mat.data[v*n+u] = 1
	}

	return &AdjacencyMatrix{Mat: mat, VertexIndex: idx, vertexByIndex: ids}, nil
}

// VertexAt returns the vertex ID for row/column i.
func (am *AdjacencyMatrix) VertexAt(i int) (string, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return "", fmt.Errorf("VertexAt(%d): %w", i, ErrOutOfRange)
	}

	return am.vertexByIndex[i], nil
}

// DegreeVector returns the row sums of the adjacency matrix.
// Complexity: O(V²).
func (am *AdjacencyMatrix) DegreeVector() []float64 {
	n := am.Mat.r
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i] += am.Mat.data[i*n+j]
		}
	}

	return out
}
