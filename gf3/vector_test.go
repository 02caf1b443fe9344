// SPDX-License-Identifier: MIT
package gf3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/gf3"
)

func TestVector_IndexRoundTrip(t *testing.T) {
	all := gf3.All()
	require.Len(t, all, gf3.Size)

	seen := make(map[gf3.Vector]struct{}, gf3.Size)
	for i, v := range all {
		require.Equal(t, i, v.Index())
		require.Equal(t, v, gf3.FromIndex(i))
		seen[v] = struct{}{}
	}
	require.Len(t, seen, gf3.Size, "All must enumerate distinct vectors")
	require.True(t, all[0].IsZero())
	require.Equal(t, gf3.Vec(2, 2, 2, 2), all[gf3.Size-1])
}

func TestVector_ArithmeticClosure(t *testing.T) {
	u := gf3.Vec(1, 2, 0, 1)
	v := gf3.Vec(2, 2, 1, 0)

	require.Equal(t, gf3.Vec(0, 1, 1, 1), u.Add(v))
	require.Equal(t, gf3.Vec(2, 1, 0, 2), u.Scale(gf3.Two))
	require.True(t, u.Scale(gf3.Zero).IsZero())
	require.True(t, u.Add(u.Scale(gf3.Two)).IsZero(), "u + 2u == 0 in characteristic 3")
	require.True(t, u.Equal(gf3.Vec(4, -1, 3, 1)))
	require.False(t, u.Equal(v))
}

func TestVector_FirstNonZero(t *testing.T) {
	require.Equal(t, -1, gf3.Vector{}.FirstNonZero())
	require.Equal(t, 0, gf3.Vec(2, 0, 0, 0).FirstNonZero())
	require.Equal(t, 3, gf3.Vec(0, 0, 0, 1).FirstNonZero())
}

func TestVector_StringParse(t *testing.T) {
	v := gf3.Vec(0, 1, 1, 2)
	require.Equal(t, "0112", v.String())

	got, ok := gf3.Parse("0112")
	require.True(t, ok)
	require.Equal(t, v, got)

	for _, bad := range []string{"", "011", "01123", "0132", "a112"} {
		_, ok := gf3.Parse(bad)
		require.False(t, ok, "Parse(%q)", bad)
	}
}
