// SPDX-License-Identifier: MIT
// Package: symgraph/verify
//
// params.go — degree and common-neighbour statistics.

package verify

import (
	"sort"

	"github.com/katalvlaran/symgraph/core"
)

// Params are the observed parameters of a graph. K, Lambda and Mu are nil
// when the quantity is not a single constant (or has no pairs to measure).
type Params struct {
	V      int
	K      *int
	Lambda *int
	Mu     *int
	// Degrees is the degree of each vertex in core index order.
	Degrees []int
	// LambdaCounts and MuCounts histogram common-neighbour counts over
	// adjacent and non-adjacent pairs respectively (count → pairs).
	LambdaCounts map[int]int
	MuCounts     map[int]int
}

// Parameters computes degrees and common-neighbour counts of every pair.
// Complexity: O(V³) on the adjacency bit matrix.
func Parameters(g *core.Graph) (Params, error) {
	if g == nil {
		return Params{}, ErrGraphNil
	}
	bits := g.AdjacencyBits()
	n := len(bits)
	p := Params{
		V:            n,
		Degrees:      make([]int, n),
		LambdaCounts: make(map[int]int),
		MuCounts:     make(map[int]int),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bits[i][j] {
				p.Degrees[i]++
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			common := 0
			for w := 0; w < n; w++ {
				if bits[i][w] && bits[j][w] {
					common++
				}
			}
			if bits[i][j] {
				p.LambdaCounts[common]++
			} else {
				p.MuCounts[common]++
			}
		}
	}
	p.K = constant(histogram(p.Degrees))
	p.Lambda = constant(p.LambdaCounts)
	p.Mu = constant(p.MuCounts)

	return p, nil
}

// IsStronglyRegular returns (v,k,λ,μ) and true when g is regular with
// constant λ and μ. Complete and edgeless graphs are not strongly regular.
func IsStronglyRegular(g *core.Graph) (SRG, bool) {
	p, err := Parameters(g)
	if err != nil || p.K == nil || p.Lambda == nil || p.Mu == nil {
		return SRG{}, false
	}

	return SRG{V: p.V, K: *p.K, Lambda: *p.Lambda, Mu: *p.Mu}, true
}

func histogram(xs []int) map[int]int {
	h := make(map[int]int, 1)
	for _, x := range xs {
		h[x]++
	}

	return h
}

// constant returns the single key of h, or nil if h has zero or several keys.
func constant(h map[int]int) *int {
	if len(h) != 1 {
		return nil
	}
	for k := range h {
		return &k
	}

	return nil
}

// distinct lists the keys of h in ascending order.
func distinct(h map[int]int) []int {
	out := make([]int, 0, len(h))
	for k := range h {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
