// SPDX-License-Identifier: MIT
// Package: symgraph/verify
//
// run.go — the verification pipeline.

package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/symgraph/automorphism"
	"github.com/katalvlaran/symgraph/bfs"
	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/matrix"
)

// Stage names passed to the stage hook and logged.
const (
	StageParameters   = "parameters"
	StageSpectrum     = "spectrum"
	StageIdentity     = "identity"
	StageAutomorphism = "automorphisms"
	StageDistances    = "distances"
	StageLines        = "lines"
)

// CheckCollinearity names the line/adjacency correspondence check.
const CheckCollinearity = "collinearity"

// Run verifies g against expect.
//
// Every check runs regardless of earlier outcomes. Errors are returned only
// for a nil graph or when ctx is cancelled; invariant failures are data.
func Run(ctx context.Context, g *core.Graph, expect Expect, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newRunConfig(opts)
	log := cfg.logger.With("profile", cfg.profile)
	r := &Report{Profile: cfg.profile, VertexCount: g.VertexCount(), EdgeCount: g.EdgeCount()}

	timed := func(stage string, fn func() error) error {
		start := time.Now()
		err := fn()
		elapsed := time.Since(start)
		cfg.stageHook(stage, elapsed)
		log.Debug("stage finished", "stage", stage, "elapsed", elapsed)

		return err
	}

	var srg *SRG
	_ = timed(StageParameters, func() error {
		srg = checkParameters(r, g, expect)
		return nil
	})
	_ = timed(StageSpectrum, func() error {
		checkSpectrum(r, g, expect, srg)
		return nil
	})
	if srg != nil {
		_ = timed(StageIdentity, func() error {
			checkIdentity(r, g, *srg)
			return nil
		})
	}
	if !cfg.skipAutGroups {
		if err := timed(StageAutomorphism, func() error { return checkAutomorphisms(ctx, r, g, expect, cfg.autBudget) }); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}
	if err := timed(StageDistances, func() error { return checkDistances(ctx, r, g, expect) }); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if cfg.lines != nil {
		_ = timed(StageLines, func() error {
			checkLines(r, g, expect, cfg)
			return nil
		})
	}

	for _, c := range r.Failed() {
		log.Warn("check failed", "check", c.Name, "outcome", c.Outcome, "expected", c.Expected, "observed", c.Observed, "detail", c.Detail)
	}
	log.Info("verification finished",
		"vertices", r.VertexCount,
		"edges", r.EdgeCount,
		"strongly_regular", r.IsStronglyRegular,
		"checks", len(r.Checks),
		"failed", len(r.Failed()),
	)

	return r, nil
}

func checkParameters(r *Report, g *core.Graph, expect Expect) *SRG {
	r.add(judge(CheckVertexCount, expect.VertexCount, r.VertexCount, expect.VertexCount == r.VertexCount))

	p, _ := Parameters(g)
	if p.K == nil {
		r.Degrees = p.Degrees
		r.add(Check{
			Name: CheckDegree, Outcome: OutcomeStructural, Expected: expect.Degree,
			Observed: distinct(histogram(p.Degrees)), Detail: "degree is not constant",
		})
	} else {
		r.Degree = p.K
		r.add(judge(CheckDegree, expect.Degree, *p.K, expect.Degree == *p.K))
	}

	r.Lambda = p.Lambda
	r.add(constantCheck(CheckLambda, expect.Lambda, p.Lambda, p.LambdaCounts, "adjacent"))
	r.Mu = p.Mu
	r.add(constantCheck(CheckMu, expect.Mu, p.Mu, p.MuCounts, "non-adjacent"))

	if p.K == nil || p.Lambda == nil || p.Mu == nil {
		return nil
	}
	r.IsStronglyRegular = true

	return &SRG{V: p.V, K: *p.K, Lambda: *p.Lambda, Mu: *p.Mu}
}

func constantCheck(name string, expected int, observed *int, counts map[int]int, pairs string) Check {
	if observed != nil {
		return judge(name, expected, *observed, expected == *observed)
	}
	c := Check{Name: name, Outcome: OutcomeStructural, Expected: expected, Observed: distinct(counts)}
	if len(counts) == 0 {
		c.Detail = "no " + pairs + " pairs"
	} else {
		c.Detail = "common neighbours of " + pairs + " pairs are not constant"
	}

	return c
}

func checkSpectrum(r *Report, g *core.Graph, expect Expect, srg *SRG) {
	spectrum, err := Spectrum(g)
	if err != nil {
		r.add(Check{Name: CheckSpectrum, Outcome: OutcomeSkipped, Expected: expect.Spectrum, Detail: err.Error()})
		return
	}
	r.Eigenvalues = spectrum
	if expect.Spectrum != nil {
		r.add(judge(CheckSpectrum, expect.Spectrum, spectrum, sameSpectrum(expect.Spectrum, spectrum)))
	}
	if srg == nil {
		return
	}
	closed, ok := SRGSpectrum(*srg)
	if !ok {
		r.add(Check{Name: CheckClosedForm, Outcome: OutcomeMismatch, Observed: spectrum, Detail: "parameters admit no integral multiplicities"})
		return
	}
	r.add(judge(CheckClosedForm, closed, spectrum, sameSpectrum(closed, spectrum)))
}

// checkIdentity tests A² = kI + λA + μ(J − I − A) entrywise.
func checkIdentity(r *Report, g *core.Graph, p SRG) {
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		r.add(Check{Name: CheckSRGIdentity, Outcome: OutcomeSkipped, Detail: err.Error()})
		return
	}
	sq, err := matrix.Mul(am.Mat, am.Mat)
	if err != nil {
		r.add(Check{Name: CheckSRGIdentity, Outcome: OutcomeSkipped, Detail: err.Error()})
		return
	}
	n := sq.Rows()
	bad := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			got, _ := sq.At(i, j)
			a, _ := am.Mat.At(i, j)
			var want float64
			switch {
			case i == j:
				want = float64(p.K)
			case a == 1:
				want = float64(p.Lambda)
			default:
				want = float64(p.Mu)
			}
			if math.Abs(got-want) > roundTo {
				bad++
			}
		}
	}
	c := judge(CheckSRGIdentity, 0, bad, bad == 0)
	c.Detail = "entries of A² deviating from kI + λA + μ(J − I − A)"
	r.add(c)
}

func checkAutomorphisms(ctx context.Context, r *Report, g *core.Graph, expect Expect, budget int) error {
	order, err := automorphism.GroupOrder(ctx, g, automorphism.WithMaxNodes(budget))
	switch {
	case errors.Is(err, automorphism.ErrSearchBudget):
		r.add(Check{Name: CheckAutomorphisms, Outcome: OutcomeSkipped, Expected: expect.AutomorphismOrder, Detail: err.Error()})
		return nil
	case err != nil:
		return err
	}
	r.AutomorphismGroupOrder = order
	if expect.AutomorphismOrder != nil {
		r.add(judge(CheckAutomorphisms, expect.AutomorphismOrder, order, order.Cmp(expect.AutomorphismOrder) == 0))
	}

	return nil
}

func checkDistances(ctx context.Context, r *Report, g *core.Graph, expect Expect) error {
	if g.VertexCount() == 0 {
		return nil
	}
	d, err := bfs.Diameter(ctx, g)
	switch {
	case errors.Is(err, bfs.ErrDisconnected):
		if expect.Diameter > 0 {
			r.add(Check{Name: CheckDiameter, Outcome: OutcomeMismatch, Expected: expect.Diameter, Observed: "disconnected"})
		}
		return nil
	case err != nil:
		return err
	}
	r.Diameter = &d
	if expect.Diameter > 0 {
		r.add(judge(CheckDiameter, expect.Diameter, d, expect.Diameter == d))
	}

	return nil
}

func checkLines(r *Report, g *core.Graph, expect Expect, cfg runConfig) {
	count := len(cfg.lines)
	r.IsotropicLineCount = &count
	if expect.IsotropicLines > 0 {
		r.add(judge(CheckIsotropicLines, expect.IsotropicLines, count, expect.IsotropicLines == count))
	}

	bits := g.AdjacencyBits()
	n := len(bits)
	collinear := make([][]bool, n)
	for i := range collinear {
		collinear[i] = make([]bool, n)
	}
	for _, ln := range cfg.lines {
		for _, a := range ln {
			for _, b := range ln {
				if a < 0 || b < 0 || a >= n || b >= n {
					r.add(Check{Name: CheckCollinearity, Outcome: OutcomeMismatch, Detail: fmt.Sprintf("line %v outside %d vertices", ln, n)})
					return
				}
				if a != b {
					collinear[a][b] = true
				}
			}
		}
	}
	bad := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if collinear[i][j] != bits[i][j] {
				bad++
			}
		}
	}
	c := judge(CheckCollinearity, 0, bad, bad == 0)
	c.Detail = "pairs where adjacency and sharing a line disagree"
	r.add(c)
}
