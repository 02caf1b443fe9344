// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_symplectic.go — Symplectic(form, rule): the collinearity graph of the
// projective points of PG(3,3) under an alternating form.
//
// Contract:
//   • Vertices are the 40 canonical points in ascending base-3 index order.
//   • Edge {i,j} (i<j) exists iff form.Adjacent(rule, p_i, p_j).
//   • Edges are emitted in lexicographic (i,j) order.
//   • IDs: coordinate strings ("0001") unless an explicit ID scheme is set.
//
// Complexity: O(40²) form evaluations, O(V+E) memory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/projective"
	"github.com/katalvlaran/symgraph/symplectic"
)

const methodSymplectic = "Symplectic"

// Symplectic returns a Constructor that adds the symplectic graph of form
// under rule. With symplectic.Standard() and RuleOrthogonal the result is
// SRG(40,12,2,4); RuleNonOrthogonal yields its complement.
func Symplectic(form symplectic.Form, rule symplectic.Rule) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := form.Validate(); err != nil {
			return fmt.Errorf("%s: %v: %w", methodSymplectic, err, ErrInvalidForm)
		}
		if rule != symplectic.RuleOrthogonal && rule != symplectic.RuleNonOrthogonal {
			return fmt.Errorf("%s: rule %d: %w", methodSymplectic, rule, symplectic.ErrUnknownRule)
		}

		pts, err := projective.Points()
		if err != nil {
			return fmt.Errorf("%s: %v: %w", methodSymplectic, err, ErrConstructFailed)
		}

		ids := make([]string, len(pts))
		for i, p := range pts {
			if cfg.idSet {
				ids[i] = cfg.idFn(i)
			} else {
				ids[i] = p.String()
			}
			if err = g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", methodSymplectic, ids[i], err)
			}
		}

		for i := 0; i < len(pts); i++ {
			for j := i + 1; j < len(pts); j++ {
				if !form.Adjacent(rule, pts[i], pts[j]) {
					continue
				}
				if _, err = g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodSymplectic, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// W33 returns the Symplectic constructor for the standard form and the
// orthogonality rule.
func W33() Constructor {
	return Symplectic(symplectic.Standard(), symplectic.RuleOrthogonal)
}
