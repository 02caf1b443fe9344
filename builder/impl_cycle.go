// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_cycle.go — Cycle(n): the simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (ErrTooFewVertices otherwise).
//   • Vertices: idFn(0..n-1); edges (i, i+1 mod n) in ascending i.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

const (
	methodCycle = "Cycle"
	minCycleN   = 3
)

// Cycle returns a Constructor that builds C_n. C_5 is SRG(5,2,0,1) with an
// automorphism group of order 10.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodCycle, i, err)
			}
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
