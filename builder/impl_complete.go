// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_complete.go — Complete(n): the complete graph K_n.
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices otherwise).
//   • Edges (i,j) for i<j in lexicographic order.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodComplete, i, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
