// Package gf3 implements arithmetic over the finite field GF(3) and the
// four-dimensional vector space GF(3)^4.
//
// Elements are small immutable values in {0,1,2}; every operation reduces
// modulo 3, so results always stay inside the field. Vectors are fixed-size
// arrays of four elements and are therefore comparable with ==, usable as map
// keys and copied by value.
//
// Core API:
//
//	New(x int) Elem                 // reduce any integer into {0,1,2}
//	Add, Sub, Mul, Neg              // total operations, O(1)
//	Inv(a) (Elem, bool)             // multiplicative inverse; false for 0
//
//	Vector{a,b,c,d}                 // point of GF(3)^4
//	v.Add(u), v.Scale(a), v.Equal(u), v.IsZero()
//	v.Index() / FromIndex(i)        // base-3 bijection with 0..80
//	All()                           // the 81 vectors in index order
//
// Vector.String renders the four coordinates as digits ("0112"); the
// symplectic graph builder uses this as its default vertex ID scheme.
package gf3
