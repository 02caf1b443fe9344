// SPDX-License-Identifier: MIT
// Package matrix - linear algebra kernels (Mul, symmetry check, Jacobi eigen).
//
// Determinism:
//   - Fixed i→j→k loop orders; pivot search scans the strict upper triangle in
//     row-major order and keeps the first maximum, so ties resolve identically.

package matrix

import (
	"fmt"
	"math"
)

// toDense returns m as a *Dense working copy (always a fresh allocation).
func toDense(tag string, m Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ tol for all i<j.
// Returns ErrNilMatrix, ErrDimensionMismatch (non-square) or ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if m == nil {
		return matrixErrorf(opSymCheck, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf(opSymCheck, ErrDimensionMismatch)
	}
	tol = math.Abs(tol)
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return matrixErrorf(opSymCheck, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// Mul returns the product a × b.
// Returns ErrNilMatrix or ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (*Dense, error) {
	ad, err := toDense(opMul, a)
	if err != nil {
		return nil, err
	}
	bd, err := toDense(opMul, b)
	if err != nil {
		return nil, err
	}
	if ad.c != bd.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", ad.r, ad.c, bd.r, bd.c, ErrDimensionMismatch))
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik := ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| and annihilate it
//     with a plane rotation, accumulating the rotations into Q.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), in index order.
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrDimensionMismatch, ErrAsymmetry, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(maxIter · n²) worst case, Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a, err := toDense(opEigen, m)
	if err != nil {
		return nil, nil, err
	}
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, p, r int
		qq            int
		maxOff, off   float64
		app, aqq, apq float64
		arp, arq      float64
		theta, t      float64
		c, s          float64
		converged     bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		// J.1: find pivot (p,q) maximizing |A[p,q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			base := i * n
			for r = i + 1; r < n; r++ {
				off = math.Abs(a.data[base+r])
				if off > maxOff {
					maxOff, p, qq = off, i, r
				}
			}
		}
		// J.2: converged?
		if maxOff <= tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		// J.3: rotation parameters
		app = a.data[p*n+p]
		aqq = a.data[qq*n+qq]
		apq = a.data[p*n+qq]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/columns p and q of A
		for r = 0; r < n; r++ {
			if r == p || r == qq {
				continue
			}
			arp = a.data[r*n+p]
			arq = a.data[r*n+qq]
			a.data[r*n+p] = c*arp - s*arq
			a.data[p*n+r] = a.data[r*n+p]
			a.data[r*n+qq] = s*arp + c*arq
			a.data[qq*n+r] = a.data[r*n+qq]
		}
		a.data[p*n+p] = app - t*apq
		a.data[qq*n+qq] = aqq + t*apq
		a.data[p*n+qq] = 0
		a.data[qq*n+p] = 0

		// J.5: accumulate eigenvectors
		for r = 0; r < n; r++ {
			arp = q.data[r*n+p]
			arq = q.data[r*n+qq]
			q.data[r*n+p] = c*arp - s*arq
			q.data[r*n+qq] = s*arp + c*arq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("max |offdiag|=%g after %d rotations: %w", maxOff, maxIter, ErrMatrixEigenFailed))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}
