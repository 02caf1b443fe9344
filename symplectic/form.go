// SPDX-License-Identifier: MIT

// Package symplectic evaluates alternating bilinear forms on GF(3)^4 and
// fixes the adjacency convention used to turn a form into a graph.
//
// A Form is stored as its Gram matrix G over GF(3):
//
//	ω(x,y) = Σ_{i,j} x_i · G[i][j] · y_j  (mod 3)
//
// and is valid only when G is alternating: G[i][i] = 0 and G[j][i] = −G[i][j].
// Alternating forms satisfy ω(v,v) = 0 and ω(u,v) = −ω(v,u) for all vectors.
//
// The documented default (Standard) pairs coordinates (0,2) and (1,3):
//
//	ω(x,y) = x0·y2 − x2·y0 + x1·y3 − x3·y1  (mod 3)
//
// Downstream edge counts depend on this choice only up to isomorphism: every
// non-degenerate alternating form on GF(3)^4 yields the same graph.
package symplectic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/symgraph/gf3"
)

// Sentinel errors for form construction.
var (
	// ErrBadPairing indicates a skew pair with an out-of-range or repeated coordinate.
	ErrBadPairing = errors.New("symplectic: invalid coordinate pairing")

	// ErrNotAlternating indicates a Gram matrix with a nonzero diagonal or
	// without antisymmetry.
	ErrNotAlternating = errors.New("symplectic: form is not alternating")

	// ErrUnknownRule indicates an adjacency rule name that is not recognised.
	ErrUnknownRule = errors.New("symplectic: unknown adjacency rule")
)

// Pair names two coordinates skew-paired by the form: (A,B) contributes
// x_A·y_B − x_B·y_A.
type Pair struct {
	A int
	B int
}

// Form is an alternating bilinear form on GF(3)^4.
type Form struct {
	gram  [gf3.Dim][gf3.Dim]gf3.Elem
	pairs []Pair // nil when built from a raw Gram matrix
}

// StandardPairs is the documented default pairing.
var StandardPairs = []Pair{{A: 0, B: 2}, {A: 1, B: 3}}

// Standard returns the documented default form ω = x0y2 − x2y0 + x1y3 − x3y1.
func Standard() Form {
	f, err := NewForm(StandardPairs)
	if err != nil {
		// StandardPairs is a package constant; failure is a programmer error.
		panic(err)
	}

	return f
}

// NewForm builds a form from skew pairs. Each coordinate may appear in at
// most one pair; fewer than two pairs give a degenerate (but still
// alternating) form.
// Complexity: O(len(pairs)).
func NewForm(pairs []Pair) (Form, error) {
	var f Form
	used := [gf3.Dim]bool{}
	for i, p := range pairs {
		if p.A < 0 || p.A >= gf3.Dim || p.B < 0 || p.B >= gf3.Dim || p.A == p.B {
			return Form{}, fmt.Errorf("NewForm: pair %d (%d,%d): %w", i, p.A, p.B, ErrBadPairing)
		}
		if used[p.A] || used[p.B] {
			return Form{}, fmt.Errorf("NewForm: pair %d (%d,%d) reuses a coordinate: %w", i, p.A, p.B, ErrBadPairing)
		}
		used[p.A], used[p.B] = true, true
		f.gram[p.A][p.B] = gf3.One
		f.gram[p.B][p.A] = gf3.Two // −1 mod 3
	}
	f.pairs = append([]Pair(nil), pairs...)

	return f, nil
}

// FromGram builds a form from an explicit Gram matrix, validating that it is
// alternating.
func FromGram(g [gf3.Dim][gf3.Dim]gf3.Elem) (Form, error) {
	f := Form{gram: g}
	if err := f.Validate(); err != nil {
		return Form{}, fmt.Errorf("FromGram: %w", err)
	}

	return f, nil
}

// Validate reports ErrNotAlternating unless G has zero diagonal and
// G[j][i] = −G[i][j] for all i<j.
func (f Form) Validate() error {
	for i := 0; i < gf3.Dim; i++ {
		if f.gram[i][i] != gf3.Zero {
			return fmt.Errorf("diagonal entry %d is %d: %w", i, f.gram[i][i], ErrNotAlternating)
		}
		for j := i + 1; j < gf3.Dim; j++ {
			if f.gram[j][i] != gf3.Neg(f.gram[i][j]) {
				return fmt.Errorf("entries (%d,%d)/(%d,%d) not antisymmetric: %w", i, j, j, i, ErrNotAlternating)
			}
		}
	}

	return nil
}

// Eval returns ω(u,v) reduced mod 3.
// Complexity: O(Dim²) = O(1).
func (f Form) Eval(u, v gf3.Vector) gf3.Elem {
	var acc gf3.Elem
	for i := 0; i < gf3.Dim; i++ {
		if u[i] == gf3.Zero {
			continue
		}
		for j := 0; j < gf3.Dim; j++ {
			acc = gf3.Add(acc, gf3.Mul(u[i], gf3.Mul(f.gram[i][j], v[j])))
		}
	}

	return acc
}

// Gram returns a copy of the Gram matrix.
func (f Form) Gram() [gf3.Dim][gf3.Dim]gf3.Elem { return f.gram }

// Pairs returns the skew pairs the form was built from, or nil when it was
// built from a raw Gram matrix.
func (f Form) Pairs() []Pair { return append([]Pair(nil), f.pairs...) }

// Rank returns the rank of the Gram matrix over GF(3). A non-degenerate
// form on GF(3)^4 has rank 4.
func (f Form) Rank() int {
	m := f.gram
	rank := 0
	for col := 0; col < gf3.Dim && rank < gf3.Dim; col++ {
		// Find a pivot row at or below rank.
		pivot := -1
		for r := rank; r < gf3.Dim; r++ {
			if m[r][col] != gf3.Zero {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		inv, _ := gf3.Inv(m[rank][col])
		for c := 0; c < gf3.Dim; c++ {
			m[rank][c] = gf3.Mul(m[rank][c], inv)
		}
		for r := 0; r < gf3.Dim; r++ {
			if r == rank || m[r][col] == gf3.Zero {
				continue
			}
			factor := m[r][col]
			for c := 0; c < gf3.Dim; c++ {
				m[r][c] = gf3.Sub(m[r][c], gf3.Mul(factor, m[rank][c]))
			}
		}
		rank++
	}

	return rank
}

// NonDegenerate reports whether the form has full rank.
func (f Form) NonDegenerate() bool { return f.Rank() == gf3.Dim }

// String renders the form as a signed polynomial, e.g. "x0y2-x2y0+x1y3-x3y1".
func (f Form) String() string {
	var b strings.Builder
	for i := 0; i < gf3.Dim; i++ {
		for j := i + 1; j < gf3.Dim; j++ {
			c := f.gram[i][j].Signed()
			if c == 0 {
				continue
			}
			if c > 0 {
				if b.Len() > 0 {
					b.WriteByte('+')
				}
				fmt.Fprintf(&b, "x%dy%d-x%dy%d", i, j, j, i)
			} else {
				b.WriteByte('-')
				fmt.Fprintf(&b, "x%dy%d+x%dy%d", i, j, j, i)
			}
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
