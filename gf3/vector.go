// SPDX-License-Identifier: MIT
// Package gf3: vectors of GF(3)^4.

package gf3

import "strings"

// Dim is the dimension of the vector space.
const Dim = 4

// Size is the number of vectors in GF(3)^4, i.e. 3^4.
const Size = 81

// Vector is a point of GF(3)^4. Coordinates are indexed 0..3.
type Vector [Dim]Elem

// Vec builds a Vector from plain integers, reducing each modulo 3.
func Vec(x0, x1, x2, x3 int) Vector {
	return Vector{New(x0), New(x1), New(x2), New(x3)}
}

// Add returns the coordinate-wise sum v + u.
func (v Vector) Add(u Vector) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = Add(v[i], u[i])
	}

	return out
}

// Scale returns a·v.
func (v Vector) Scale(a Elem) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = Mul(a, v[i])
	}

	return out
}

// Equal reports whether v and u have identical coordinates.
func (v Vector) Equal(u Vector) bool { return v == u }

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool { return v == Vector{} }

// FirstNonZero returns the position of the first nonzero coordinate,
// or -1 for the zero vector.
func (v Vector) FirstNonZero() int {
	for i := 0; i < Dim; i++ {
		if v[i] != Zero {
			return i
		}
	}

	return -1
}

// Index returns the base-3 integer x0·27 + x1·9 + x2·3 + x3 in [0, 81).
func (v Vector) Index() int {
	idx := 0
	for i := 0; i < Dim; i++ {
		idx = idx*Order + v[i].Int()
	}

	return idx
}

// FromIndex is the inverse of Vector.Index. Indices outside [0,81) are
// reduced modulo 81 first.
func FromIndex(idx int) Vector {
	idx %= Size
	if idx < 0 {
		idx += Size
	}
	var v Vector
	for i := Dim - 1; i >= 0; i-- {
		v[i] = Elem(idx % Order)
		idx /= Order
	}

	return v
}

// All returns every vector of GF(3)^4 in ascending Index order.
func All() []Vector {
	out := make([]Vector, Size)
	for i := 0; i < Size; i++ {
		out[i] = FromIndex(i)
	}

	return out
}

// String renders the coordinates as digits, e.g. "0112".
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(Dim)
	for i := 0; i < Dim; i++ {
		b.WriteByte(byte('0' + v[i].Int()))
	}

	return b.String()
}

// Parse is the inverse of Vector.String. It accepts exactly four digits
// in {0,1,2}.
func Parse(s string) (Vector, bool) {
	var v Vector
	if len(s) != Dim {
		return v, false
	}
	for i := 0; i < Dim; i++ {
		d := s[i]
		if d < '0' || d > '2' {
			return Vector{}, false
		}
		v[i] = Elem(d - '0')
	}

	return v, true
}
