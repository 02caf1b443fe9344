// SPDX-License-Identifier: MIT

// Package projective enumerates the projective space PG(3,3) underlying
// GF(3)^4: its 40 points (1-dimensional subspaces) and, for a given
// alternating form, its totally isotropic lines (2-dimensional subspaces on
// which the form vanishes identically).
//
// Canonicalisation rule: a point is represented by the unique scalar
// multiple of any spanning vector whose first nonzero coordinate equals 1.
//
// Determinism: Points returns representatives sorted by base-3 index, and
// Lines returns lines sorted lexicographically by their point positions.
package projective

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/symgraph/gf3"
)

// PointCount is (3^4 − 1)/(3 − 1), the number of points of PG(3,3).
const PointCount = (gf3.Size - 1) / (gf3.Order - 1)

// classSize is the number of nonzero scalars, i.e. vectors per point.
const classSize = gf3.Order - 1

// ErrClassCount signals an internal inconsistency: the partition of nonzero
// vectors into scalar classes did not produce PointCount classes of size 2.
// It is a self-check on a mathematical constant, not a normal error path.
var ErrClassCount = errors.New("projective: unexpected projective class count")

// Canonical returns the representative of v's projective class: v scaled
// so that its first nonzero coordinate is 1. The zero vector is returned
// unchanged and ok is false.
func Canonical(v gf3.Vector) (rep gf3.Vector, ok bool) {
	pos := v.FirstNonZero()
	if pos < 0 {
		return v, false
	}
	inv, _ := gf3.Inv(v[pos])

	return v.Scale(inv), true
}

// Points enumerates all 80 nonzero vectors of GF(3)^4, partitions them
// into scalar classes, and returns one canonical representative per class
// in ascending Index order.
//
// Returns ErrClassCount if the class count is not 40 or any class does
// not contain exactly 2 vectors.
// Complexity: O(81).
func Points() ([]gf3.Vector, error) {
	classes := make(map[gf3.Vector]int, PointCount)
	nonZero := 0
	for _, v := range gf3.All() {
		rep, ok := Canonical(v)
		if !ok {
			continue
		}
		nonZero++
		classes[rep]++
	}

	if nonZero != gf3.Size-1 || len(classes) != PointCount {
		return nil, fmt.Errorf("Points: %d nonzero vectors in %d classes, want %d in %d: %w",
			nonZero, len(classes), gf3.Size-1, PointCount, ErrClassCount)
	}
	reps := make([]gf3.Vector, 0, len(classes))
	for rep, n := range classes {
		if n != classSize {
			return nil, fmt.Errorf("Points: class %s has %d members, want %d: %w", rep, n, classSize, ErrClassCount)
		}
		reps = append(reps, rep)
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i].Index() < reps[j].Index() })

	return reps, nil
}

// MustPoints is Points for package initialisation and tests; it panics on
// the self-check failure, which cannot happen for GF(3)^4.
func MustPoints() []gf3.Vector {
	pts, err := Points()
	if err != nil {
		panic(err)
	}

	return pts
}

// Position returns a lookup from canonical representative to its position
// in pts.
func Position(pts []gf3.Vector) map[gf3.Vector]int {
	pos := make(map[gf3.Vector]int, len(pts))
	for i, p := range pts {
		pos[p] = i
	}

	return pos
}
