// SPDX-License-Identifier: MIT
// Package: symgraph/automorphism
//
// errors.go — sentinel errors.

package automorphism

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("automorphism: graph is nil")

	// ErrVertexNotFound is returned when Find receives an unknown vertex ID.
	ErrVertexNotFound = errors.New("automorphism: vertex not found")

	// ErrNoAutomorphism is returned by Find when no automorphism maps the
	// given sequence onto the target sequence.
	ErrNoAutomorphism = errors.New("automorphism: no such automorphism")

	// ErrNotIsomorphic is returned by Isomorphism for non-isomorphic graphs.
	ErrNotIsomorphic = errors.New("automorphism: graphs are not isomorphic")

	// ErrSearchBudget is returned when the search exceeds WithMaxNodes.
	ErrSearchBudget = errors.New("automorphism: search node budget exhausted")

	// ErrOptionViolation is returned for invalid options.
	ErrOptionViolation = errors.New("automorphism: invalid option supplied")
)
