// SPDX-License-Identifier: MIT
package projective

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/symgraph/gf3"
	"github.com/katalvlaran/symgraph/symplectic"
)

// PointsPerLine is the number of projective points on a line of PG(3,3).
const PointsPerLine = gf3.Order + 1

// Line is a 2-dimensional subspace, stored as the sorted positions (in the
// slice returned by Points) of its four projective points.
type Line [PointsPerLine]int

// span returns the canonical positions of the four points on the line
// through p and q: p, q, p+q, p+2q.
func span(p, q gf3.Vector, pos map[gf3.Vector]int) (Line, error) {
	vs := [PointsPerLine]gf3.Vector{p, q, p.Add(q), p.Add(q.Scale(gf3.Two))}
	var l Line
	for i, v := range vs {
		rep, ok := Canonical(v)
		if !ok {
			return Line{}, fmt.Errorf("span(%s,%s): %w", p, q, ErrClassCount)
		}
		idx, ok := pos[rep]
		if !ok {
			return Line{}, fmt.Errorf("span(%s,%s): %s not a point: %w", p, q, rep, ErrClassCount)
		}
		l[i] = idx
	}
	sort.Ints(l[:])

	return l, nil
}

// Lines returns the totally isotropic lines of f over the given points:
// every line through two distinct points p, q with ω(p,q) = 0. Because the
// form is alternating and bilinear, ω vanishes on the whole span.
//
// For a non-degenerate form there are exactly 40 such lines, every point
// lies on 4 of them, and two distinct orthogonal points lie on exactly one.
// Complexity: O(P²) for P points.
func Lines(f symplectic.Form, pts []gf3.Vector) ([]Line, error) {
	pos := Position(pts)
	seen := make(map[Line]struct{})
	var out []Line
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if f.Eval(pts[i], pts[j]) != gf3.Zero {
				continue
			}
			l, err := span(pts[i], pts[j], pos)
			if err != nil {
				return nil, fmt.Errorf("Lines: %w", err)
			}
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		for k := 0; k < PointsPerLine; k++ {
			if out[a][k] != out[b][k] {
				return out[a][k] < out[b][k]
			}
		}
		return false
	})

	return out, nil
}
