// SPDX-License-Identifier: MIT
// Package: symgraph/config
//
// resolve.go — conversion from a Profile to domain values.

package config

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/gf3"
	"github.com/katalvlaran/symgraph/projective"
	"github.com/katalvlaran/symgraph/symplectic"
	"github.com/katalvlaran/symgraph/verify"
)

// SymplecticForm builds the alternating form the profile names.
func (p *Profile) SymplecticForm() (symplectic.Form, error) {
	if len(p.Form.Gram) > 0 {
		var g [gf3.Dim][gf3.Dim]gf3.Elem
		for i, row := range p.Form.Gram {
			for j, x := range row {
				g[i][j] = gf3.New(x)
			}
		}
		f, err := symplectic.FromGram(g)
		if err != nil {
			return symplectic.Form{}, fmt.Errorf("%w: %s: %w", ErrInvalidProfile, p.Name, err)
		}
		return f, nil
	}

	pairs := make([]symplectic.Pair, len(p.Form.Pairs))
	for i, pr := range p.Form.Pairs {
		pairs[i] = symplectic.Pair{A: pr[0], B: pr[1]}
	}
	f, err := symplectic.NewForm(pairs)
	if err != nil {
		return symplectic.Form{}, fmt.Errorf("%w: %s: %w", ErrInvalidProfile, p.Name, err)
	}

	return f, nil
}

// AdjacencyRule parses the profile's rule (orthogonal by default).
func (p *Profile) AdjacencyRule() (symplectic.Rule, error) {
	return symplectic.ParseRule(p.Rule)
}

// Constructor returns the builder constructor for the profile's graph.
func (p *Profile) Constructor() (builder.Constructor, error) {
	f, err := p.SymplecticForm()
	if err != nil {
		return nil, err
	}
	r, err := p.AdjacencyRule()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	return builder.Symplectic(f, r), nil
}

// BuilderOptions maps id_scheme to builder options.
func (p *Profile) BuilderOptions() []builder.BuilderOption {
	switch p.IDScheme {
	case IDDecimal:
		return []builder.BuilderOption{builder.WithDecimalIDs()}
	case IDPrefixed:
		return []builder.BuilderOption{builder.WithPrefixedIDs(p.IDPrefix)}
	default:
		return nil
	}
}

// Expectations converts the targets for verify.Run.
func (p *Profile) Expectations() (verify.Expect, error) {
	t := p.Expect
	e := verify.Expect{
		VertexCount:    t.VertexCount,
		Degree:         t.Degree,
		Lambda:         t.Lambda,
		Mu:             t.Mu,
		Diameter:       t.Diameter,
		IsotropicLines: t.IsotropicLines,
	}
	for _, ev := range t.Eigenvalues {
		e.Spectrum = append(e.Spectrum, verify.Eigenvalue{Value: ev.Value, Multiplicity: ev.Multiplicity})
	}
	if t.AutomorphismGroupOrder != "" {
		n, ok := new(big.Int).SetString(t.AutomorphismGroupOrder, 10)
		if !ok {
			return verify.Expect{}, fmt.Errorf("%w: automorphism_group_order %q", ErrInvalidProfile, t.AutomorphismGroupOrder)
		}
		e.AutomorphismOrder = n
	}

	return e, nil
}

// VerifyOptions returns the run options implied by the profile, including
// the totally isotropic lines of its form.
func (p *Profile) VerifyOptions() ([]verify.Option, error) {
	f, err := p.SymplecticForm()
	if err != nil {
		return nil, err
	}
	pts, err := projective.Points()
	if err != nil {
		return nil, fmt.Errorf("VerifyOptions: %w", err)
	}
	lines, err := projective.Lines(f, pts)
	if err != nil {
		return nil, fmt.Errorf("VerifyOptions: %w", err)
	}

	opts := []verify.Option{
		verify.WithProfile(p.Name),
		verify.WithLines(lines),
		verify.WithAutomorphismBudget(p.Search.MaxNodes),
	}
	if p.Search.SkipAutomorphisms {
		opts = append(opts, verify.WithoutAutomorphisms())
	}

	return opts, nil
}
