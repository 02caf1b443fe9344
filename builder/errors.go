// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete, e.g.
// a nil constructor, a nil graph, or a failed self-check during enumeration.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidForm indicates the supplied form is not alternating.
var ErrInvalidForm = errors.New("builder: invalid symplectic form")
