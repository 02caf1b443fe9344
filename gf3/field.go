// SPDX-License-Identifier: MIT
// Package gf3: field element type and the four field operations.

package gf3

// Order is the number of elements of the field.
const Order = 3

// Elem is an element of GF(3). The zero value is the additive identity.
// Values outside {0,1,2} are never produced by this package.
type Elem uint8

// Named field constants.
const (
	Zero Elem = 0
	One  Elem = 1
	Two  Elem = 2
)

// inverses[a] is a⁻¹ for a ∈ {1,2}; the entry for 0 is unused.
var inverses = [Order]Elem{0, 1, 2}

// New reduces an arbitrary integer into GF(3).
// Negative inputs are handled so that New(-1) == Two.
// Complexity: O(1).
func New(x int) Elem {
	r := x % Order
	if r < 0 {
		r += Order
	}

	return Elem(r)
}

// Add returns a + b (mod 3).
func Add(a, b Elem) Elem { return (a + b) % Order }

// Sub returns a − b (mod 3).
func Sub(a, b Elem) Elem { return (a + Order - b%Order) % Order }

// Mul returns a · b (mod 3).
func Mul(a, b Elem) Elem { return (a * b) % Order }

// Neg returns the additive inverse −a (mod 3).
func Neg(a Elem) Elem { return (Order - a%Order) % Order }

// Inv returns the multiplicative inverse of a.
// The boolean is false for a == 0, which has no inverse.
func Inv(a Elem) (Elem, bool) {
	a %= Order
	if a == Zero {
		return Zero, false
	}

	return inverses[a], true
}

// Int returns the element as a plain int in {0,1,2}.
func (a Elem) Int() int { return int(a % Order) }

// Signed returns the balanced representative in {-1,0,1} (2 maps to -1).
// Useful when printing Gram matrices of alternating forms.
func (a Elem) Signed() int {
	if a%Order == Two {
		return -1
	}

	return int(a % Order)
}
