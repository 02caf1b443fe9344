// SPDX-License-Identifier: MIT
package gf3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/gf3"
)

var elems = []gf3.Elem{gf3.Zero, gf3.One, gf3.Two}

func TestNew_Reduces(t *testing.T) {
	cases := map[int]gf3.Elem{0: 0, 1: 1, 2: 2, 3: 0, 4: 1, -1: 2, -2: 1, -3: 0, 100: 1}
	for in, want := range cases {
		require.Equal(t, want, gf3.New(in), "New(%d)", in)
	}
}

func TestFieldOps_Closure(t *testing.T) {
	for _, a := range elems {
		for _, b := range elems {
			require.Less(t, int(gf3.Add(a, b)), gf3.Order)
			require.Less(t, int(gf3.Mul(a, b)), gf3.Order)
			require.Less(t, int(gf3.Sub(a, b)), gf3.Order)

			require.Equal(t, gf3.New(a.Int()+b.Int()), gf3.Add(a, b))
			require.Equal(t, gf3.New(a.Int()*b.Int()), gf3.Mul(a, b))
			require.Equal(t, gf3.New(a.Int()-b.Int()), gf3.Sub(a, b))
			require.Equal(t, a, gf3.Add(gf3.Sub(a, b), b), "(a-b)+b == a")
		}
		require.Equal(t, gf3.Zero, gf3.Add(a, gf3.Neg(a)))
	}
}

func TestInv(t *testing.T) {
	_, ok := gf3.Inv(gf3.Zero)
	require.False(t, ok)

	for _, a := range []gf3.Elem{gf3.One, gf3.Two} {
		inv, ok := gf3.Inv(a)
		require.True(t, ok)
		require.Equal(t, gf3.One, gf3.Mul(a, inv))
	}
}

func TestSigned(t *testing.T) {
	require.Equal(t, 0, gf3.Zero.Signed())
	require.Equal(t, 1, gf3.One.Signed())
	require.Equal(t, -1, gf3.Two.Signed())
}
