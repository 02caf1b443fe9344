// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_kneser.go — Kneser(n, k): k-subsets of {0..n-1}, adjacent iff disjoint.
//
// Contract:
//   • 1 ≤ k, 2k ≤ n ≤ 64 (ErrTooFewVertices otherwise).
//   • Subsets enumerated in lexicographic order; vertex i is the i-th subset.
//   • Kneser(5,2) is the Petersen graph, SRG(10,3,0,1), |Aut| = 120.
//
// Complexity: O(C(n,k)²) subset comparisons.

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

const (
	methodKneser = "Kneser"
	maxKneserN   = 64 // subsets are uint64 bitmasks
)

// Kneser returns a Constructor that builds the Kneser graph K(n,k).
func Kneser(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 1 || 2*k > n || n > maxKneserN {
			return fmt.Errorf("%s: n=%d k=%d: %w", methodKneser, n, k, ErrTooFewVertices)
		}
		subsets := kSubsets(n, k)
		for i := range subsets {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodKneser, i, err)
			}
		}
		for i := 0; i < len(subsets); i++ {
			for j := i + 1; j < len(subsets); j++ {
				if subsets[i]&subsets[j] != 0 {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodKneser, u, v, err)
				}
			}
		}

		return nil
	}
}

// kSubsets lists the k-subsets of {0..n-1} as bitmasks in lexicographic order
// of their sorted element lists.
func kSubsets(n, k int) []uint64 {
	var out []uint64
	var rec func(start int, left int, mask uint64)
	rec = func(start int, left int, mask uint64) {
		if left == 0 {
			out = append(out, mask)
			return
		}
		for e := start; e <= n-left; e++ {
			rec(e+1, left-1, mask|1<<uint(e))
		}
	}
	rec(0, k, 0)

	return out
}
