// SPDX-License-Identifier: MIT
// Package builder_test covers the constructors and ID options.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/symplectic"
)

func degrees(t *testing.T, g *core.Graph) map[int]int {
	t.Helper()
	hist := make(map[int]int)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		hist[d]++
	}

	return hist
}

func TestW33Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)
	require.Equal(t, 40, g.VertexCount())
	require.Equal(t, 240, g.EdgeCount())
	require.Equal(t, map[int]int{12: 40}, degrees(t, g))

	vs := g.Vertices()
	require.Equal(t, "0001", vs[0])
	require.Equal(t, "1222", vs[len(vs)-1])
}

func TestW33Adjacency(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)
	// ω(e0,e1) = 0 and ω(e0,e2) = 1 under the standard pairing (0,2),(1,3).
	require.True(t, g.HasEdge("1000", "0100"))
	require.False(t, g.HasEdge("1000", "0010"))
	require.False(t, g.HasEdge("1000", "1000"))

	bits := g.AdjacencyBits()
	for i := range bits {
		require.False(t, bits[i][i])
		for j := range bits {
			require.Equal(t, bits[i][j], bits[j][i])
		}
	}
}

func TestSymplecticDeterministic(t *testing.T) {
	a, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)
	require.Equal(t, a.Vertices(), b.Vertices())
	require.Equal(t, a.Edges(), b.Edges())
}

func TestSymplecticComplement(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Symplectic(symplectic.Standard(), symplectic.RuleNonOrthogonal))
	require.NoError(t, err)
	require.Equal(t, 40*27/2, g.EdgeCount())
	require.Equal(t, map[int]int{27: 40}, degrees(t, g))
}

func TestSymplecticZeroFormIsComplete(t *testing.T) {
	var zero symplectic.Form
	g, err := builder.BuildGraph(nil, builder.Symplectic(zero, symplectic.RuleOrthogonal))
	require.NoError(t, err)
	require.Equal(t, 40*39/2, g.EdgeCount())
}

func TestSymplecticRejectsBadInput(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Symplectic(symplectic.Standard(), symplectic.Rule(9)))
	require.ErrorIs(t, err, symplectic.ErrUnknownRule)
}

func TestIDSchemes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDecimalIDs()}, builder.W33())
	require.NoError(t, err)
	require.Equal(t, "0", g.Vertices()[0])
	require.Equal(t, "39", g.Vertices()[39])

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithPrefixedIDs("v")}, builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, []string{"v0", "v1", "v2", "v3"}, g.Vertices())

	require.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestFixtures(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		n, m int
		deg  int
	}{
		{"C5", builder.Cycle(5), 5, 5, 2},
		{"K4", builder.Complete(4), 4, 6, 3},
		{"Petersen", builder.Kneser(5, 2), 10, 15, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)
			require.Equal(t, tc.n, g.VertexCount())
			require.Equal(t, tc.m, g.EdgeCount())
			require.Equal(t, map[int]int{tc.deg: tc.n}, degrees(t, g))
		})
	}
}

func TestParameterErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, builder.Complete(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, builder.Kneser(3, 2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
