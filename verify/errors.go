// SPDX-License-Identifier: MIT
// Package: symgraph/verify
//
// errors.go — sentinel errors. Invariant violations are never errors; they
// are reported as Check outcomes.

package verify

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("verify: graph is nil")

	// ErrEmptyGraph is returned by Spectrum for a graph without vertices.
	ErrEmptyGraph = errors.New("verify: graph has no vertices")
)
