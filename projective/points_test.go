// SPDX-License-Identifier: MIT
package projective_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/gf3"
	"github.com/katalvlaran/symgraph/projective"
	"github.com/katalvlaran/symgraph/symplectic"
)

func TestCanonical(t *testing.T) {
	rep, ok := projective.Canonical(gf3.Vec(0, 2, 1, 0))
	require.True(t, ok)
	require.Equal(t, gf3.Vec(0, 1, 2, 0), rep)

	rep, ok = projective.Canonical(gf3.Vec(1, 2, 2, 1))
	require.True(t, ok)
	require.Equal(t, gf3.Vec(1, 2, 2, 1), rep, "already canonical")

	_, ok = projective.Canonical(gf3.Vector{})
	require.False(t, ok)
}

// Enumerating the 80 nonzero vectors yields exactly 40 classes of size 2.
func TestPoints_FortyClasses(t *testing.T) {
	pts, err := projective.Points()
	require.NoError(t, err)
	require.Len(t, pts, projective.PointCount)
	require.Equal(t, 40, projective.PointCount)

	members := make(map[gf3.Vector][]gf3.Vector)
	for _, v := range gf3.All() {
		if rep, ok := projective.Canonical(v); ok {
			members[rep] = append(members[rep], v)
		}
	}
	require.Len(t, members, 40)

	for i, p := range pts {
		require.Equal(t, gf3.One, p[p.FirstNonZero()], "first nonzero coordinate is 1")
		require.Len(t, members[p], 2)
		require.Contains(t, members[p], p.Scale(gf3.Two))
		if i > 0 {
			require.Less(t, pts[i-1].Index(), p.Index(), "ascending index order")
		}
	}
	require.Equal(t, gf3.Vec(0, 0, 0, 1), pts[0])
	require.Equal(t, gf3.Vec(1, 2, 2, 2), pts[len(pts)-1])
}

func TestPoints_Deterministic(t *testing.T) {
	a := projective.MustPoints()
	b := projective.MustPoints()
	require.Equal(t, a, b)
}

func TestLines_GeneralisedQuadrangle(t *testing.T) {
	pts := projective.MustPoints()
	f := symplectic.Standard()

	lines, err := projective.Lines(f, pts)
	require.NoError(t, err)
	require.Len(t, lines, 40)

	onLines := make([]int, len(pts))
	shared := make(map[[2]int]int)
	for _, l := range lines {
		for a := 0; a < projective.PointsPerLine; a++ {
			onLines[l[a]]++
			for b := a + 1; b < projective.PointsPerLine; b++ {
				require.Equal(t, gf3.Zero, f.Eval(pts[l[a]], pts[l[b]]), "line must be totally isotropic")
				shared[[2]int{l[a], l[b]}]++
			}
		}
	}
	for i, n := range onLines {
		require.Equal(t, 4, n, "point %s must lie on 4 lines", pts[i])
	}
	// Two distinct orthogonal points lie on exactly one common line.
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			want := 0
			if f.Eval(pts[i], pts[j]) == gf3.Zero {
				want = 1
			}
			require.Equal(t, want, shared[[2]int{i, j}], "%s,%s", pts[i], pts[j])
		}
	}
}

func TestLines_DegenerateFormHasMore(t *testing.T) {
	f, err := symplectic.NewForm(nil) // ω ≡ 0: every line is isotropic
	require.NoError(t, err)
	lines, err := projective.Lines(f, projective.MustPoints())
	require.NoError(t, err)
	require.Len(t, lines, 130, "PG(3,3) has 130 lines")
}
