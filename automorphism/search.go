// SPDX-License-Identifier: MIT
// Package: symgraph/automorphism
//
// search.go — backtracking extension of a partial mapping between two
// coloured graphs.

package automorphism

import (
	"context"
	"fmt"
)

// searcher carries the per-call state of one backtracking search.
type searcher struct {
	ctx      context.Context
	ga, gb   view
	nodes    int
	maxNodes int
}

// extend returns a bijection p (a-vertex → b-vertex) that preserves the
// colourings a, b and all adjacencies, or nil if none exists.
//
// Stage 1 (Refine): jointly refine; diverging histograms prune the node.
// Stage 2 (Leaf):   a discrete colouring fixes p; accept iff edges map to edges.
// Stage 3 (Branch): individualise the lowest vertex of the target cell in a
// against each same-coloured vertex in b, ascending.
func (s *searcher) extend(a, b []int) ([]int, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	s.nodes++
	if s.maxNodes > 0 && s.nodes > s.maxNodes {
		return nil, fmt.Errorf("%w: %d nodes", ErrSearchBudget, s.maxNodes)
	}

	a, b, ok := refine(s.ga, s.gb, a, b)
	if !ok {
		return nil, nil
	}

	col := targetCell(a)
	if col < 0 {
		p := leafMapping(a, b)
		if preserves(s.ga, s.gb, p) {
			return p, nil
		}
		return nil, nil
	}

	v := members(a, col)[0]
	for _, w := range members(b, col) {
		p, err := s.extend(individualize(a, v), individualize(b, w))
		if err != nil || p != nil {
			return p, err
		}
	}

	return nil, nil
}

// leafMapping pairs vertices of equal colour in two discrete colourings.
func leafMapping(a, b []int) []int {
	byColour := make([]int, len(b))
	for w, x := range b {
		byColour[x] = w
	}
	p := make([]int, len(a))
	for v, x := range a {
		p[v] = byColour[x]
	}

	return p
}

// preserves reports whether the bijection p maps every edge of ga onto an
// edge of gb. Equal edge counts make this an isomorphism test.
func preserves(ga, gb view, p []int) bool {
	if ga.edges != gb.edges || ga.order() != gb.order() {
		return false
	}
	for u, ns := range ga.nbrs {
		for _, v := range ns {
			if !gb.adj[p[u]][p[v]] {
				return false
			}
		}
	}

	return true
}
