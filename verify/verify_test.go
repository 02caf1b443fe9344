// SPDX-License-Identifier: MIT
package verify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/projective"
	"github.com/katalvlaran/symgraph/symplectic"
	"github.com/katalvlaran/symgraph/verify"
)

func ev(v float64, m int) verify.Eigenvalue {
	return verify.Eigenvalue{Value: v, Multiplicity: m}
}

type W33Suite struct {
	suite.Suite
	g *core.Graph
}

func (s *W33Suite) SetupSuite() {
	g, err := builder.BuildGraph(nil, builder.W33())
	s.Require().NoError(err)
	s.g = g
}

func (s *W33Suite) TestIsStronglyRegular() {
	srg, ok := verify.IsStronglyRegular(s.g)
	s.Require().True(ok)
	s.Require().Equal(verify.SRG{V: 40, K: 12, Lambda: 2, Mu: 4}, srg)
}

func (s *W33Suite) TestParameterHistograms() {
	p, err := verify.Parameters(s.g)
	s.Require().NoError(err)
	// 240 adjacent pairs with 2 common neighbours, 540 non-adjacent with 4.
	s.Require().Equal(map[int]int{2: 240}, p.LambdaCounts)
	s.Require().Equal(map[int]int{4: 540}, p.MuCounts)
	for _, d := range p.Degrees {
		s.Require().Equal(12, d)
	}
}

func (s *W33Suite) TestSpectrum() {
	got, err := verify.Spectrum(s.g)
	s.Require().NoError(err)
	s.Require().Equal([]verify.Eigenvalue{
		{Value: 12, Multiplicity: 1},
		{Value: 2, Multiplicity: 24},
		{Value: -4, Multiplicity: 15},
	}, got)

	total := 0
	for _, e := range got {
		total += e.Multiplicity
	}
	s.Require().Equal(40, total)
}

func (s *W33Suite) TestRunAllChecksPass() {
	pts := projective.MustPoints()
	lines, err := projective.Lines(symplectic.Standard(), pts)
	s.Require().NoError(err)

	var stages []string
	r, err := verify.Run(context.Background(), s.g, verify.W33(),
		verify.WithProfile("w33"),
		verify.WithLines(lines),
		verify.WithStageHook(func(stage string, _ time.Duration) { stages = append(stages, stage) }),
	)
	s.Require().NoError(err)
	s.Require().Empty(r.Failed())
	s.Require().True(r.Passed())
	s.Require().True(r.IsStronglyRegular)
	s.Require().Equal(240, r.EdgeCount)
	s.Require().Equal(2, *r.Diameter)
	s.Require().Equal(40, *r.IsotropicLineCount)
	s.Require().Zero(r.AutomorphismGroupOrder.Cmp(big.NewInt(51840)))
	s.Require().Equal([]string{
		verify.StageParameters, verify.StageSpectrum, verify.StageIdentity,
		verify.StageAutomorphism, verify.StageDistances, verify.StageLines,
	}, stages)

	for _, name := range []string{
		verify.CheckVertexCount, verify.CheckDegree, verify.CheckLambda, verify.CheckMu,
		verify.CheckSpectrum, verify.CheckClosedForm, verify.CheckSRGIdentity,
		verify.CheckAutomorphisms, verify.CheckDiameter, verify.CheckIsotropicLines,
		verify.CheckCollinearity,
	} {
		c, ok := r.Check(name)
		s.Require().True(ok, name)
		s.Require().Equal(verify.OutcomePass, c.Outcome, name)
	}
}

func (s *W33Suite) TestReportJSON() {
	r, err := verify.Run(context.Background(), s.g, verify.W33())
	s.Require().NoError(err)
	raw, err := json.Marshal(r)
	s.Require().NoError(err)

	var m map[string]any
	s.Require().NoError(json.Unmarshal(raw, &m))
	s.Require().EqualValues(40, m["vertex_count"])
	s.Require().EqualValues(12, m["degree"])
	s.Require().NotContains(m, "degrees")
	s.Require().EqualValues(2, m["lambda"])
	s.Require().EqualValues(4, m["mu"])
	s.Require().EqualValues(51840, m["automorphism_group_order"])
	s.Require().Equal(true, m["is_strongly_regular"])

	eig, ok := m["eigenvalues"].([]any)
	s.Require().True(ok)
	s.Require().Len(eig, 3)
	first := eig[0].(map[string]any)
	s.Require().EqualValues(12, first["value"])
	s.Require().EqualValues(1, first["multiplicity"])
}

func (s *W33Suite) TestLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := verify.Run(context.Background(), s.g, verify.W33(), verify.WithLogger(logger), verify.WithoutAutomorphisms())
	s.Require().NoError(err)
	s.Require().Contains(buf.String(), `"msg":"verification finished"`)
	s.Require().Contains(buf.String(), `"stage":"spectrum"`)
	s.Require().NotContains(buf.String(), `"stage":"automorphisms"`)
}

func TestW33Suite(t *testing.T) {
	suite.Run(t, new(W33Suite))
}

func TestComplementReportsMismatchesAsData(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Symplectic(symplectic.Standard(), symplectic.RuleNonOrthogonal))
	require.NoError(t, err)

	srg, ok := verify.IsStronglyRegular(g)
	require.True(t, ok)
	require.Equal(t, verify.SRG{V: 40, K: 27, Lambda: 18, Mu: 18}, srg)

	r, err := verify.Run(context.Background(), g, verify.W33())
	require.NoError(t, err)
	require.False(t, r.Passed())

	failed := map[string]verify.Outcome{}
	for _, c := range r.Failed() {
		failed[c.Name] = c.Outcome
	}
	require.Equal(t, map[string]verify.Outcome{
		verify.CheckDegree:   verify.OutcomeMismatch,
		verify.CheckLambda:   verify.OutcomeMismatch,
		verify.CheckMu:       verify.OutcomeMismatch,
		verify.CheckSpectrum: verify.OutcomeMismatch,
	}, failed)

	// 27, 3 and -3 with multiplicities 1, 15, 24.
	require.Equal(t, []verify.Eigenvalue{ev(27, 1), ev(3, 15), ev(-3, 24)}, r.Eigenvalues)
}

func TestIrregularGraphIsStructural(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	r, err := verify.Run(context.Background(), g, verify.W33())
	require.NoError(t, err)
	require.False(t, r.IsStronglyRegular)
	require.Nil(t, r.Degree)
	require.Equal(t, []int{1, 2, 1}, r.Degrees)

	c, ok := r.Check(verify.CheckDegree)
	require.True(t, ok)
	require.Equal(t, verify.OutcomeStructural, c.Outcome)
	require.Equal(t, []int{1, 2}, c.Observed)

	c, ok = r.Check(verify.CheckVertexCount)
	require.True(t, ok)
	require.Equal(t, verify.OutcomeMismatch, c.Outcome)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"degrees":[1,2,1]`)
	require.NotContains(t, string(raw), `"degree":`)
}

func TestReferenceGraphs(t *testing.T) {
	cases := []struct {
		name   string
		cons   builder.Constructor
		expect verify.Expect
	}{
		{"C5", builder.Cycle(5), verify.Expect{VertexCount: 5, Degree: 2, Lambda: 0, Mu: 1, AutomorphismOrder: big.NewInt(10), Diameter: 2}},
		{"Petersen", builder.Kneser(5, 2), verify.Expect{
			VertexCount: 10, Degree: 3, Lambda: 0, Mu: 1, AutomorphismOrder: big.NewInt(120), Diameter: 2,
			Spectrum: []verify.Eigenvalue{ev(3, 1), ev(1, 5), ev(-2, 4)},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)
			r, err := verify.Run(context.Background(), g, tc.expect)
			require.NoError(t, err)
			require.Empty(t, r.Failed())
		})
	}
}

func TestCompleteGraphHasNoMu(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	_, ok := verify.IsStronglyRegular(g)
	require.False(t, ok)

	r, err := verify.Run(context.Background(), g, verify.Expect{VertexCount: 4, Degree: 3, Lambda: 2})
	require.NoError(t, err)
	c, ok := r.Check(verify.CheckMu)
	require.True(t, ok)
	require.Equal(t, verify.OutcomeStructural, c.Outcome)
	require.Equal(t, "no non-adjacent pairs", c.Detail)
	require.Nil(t, r.Mu)
}

func TestDisconnectedDiameter(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	srg, ok := verify.IsStronglyRegular(g)
	require.True(t, ok)
	require.Equal(t, verify.SRG{V: 6, K: 2, Lambda: 1, Mu: 0}, srg)

	r, err := verify.Run(context.Background(), g, verify.Expect{VertexCount: 6, Degree: 2, Lambda: 1, Diameter: 2})
	require.NoError(t, err)
	require.Nil(t, r.Diameter)
	c, ok := r.Check(verify.CheckDiameter)
	require.True(t, ok)
	require.Equal(t, "disconnected", c.Observed)

	c, ok = r.Check(verify.CheckClosedForm)
	require.True(t, ok)
	require.Equal(t, verify.OutcomePass, c.Outcome)
}

func TestSRGSpectrum(t *testing.T) {
	got, ok := verify.SRGSpectrum(verify.SRG{V: 40, K: 12, Lambda: 2, Mu: 4})
	require.True(t, ok)
	require.Equal(t, []verify.Eigenvalue{ev(12, 1), ev(2, 24), ev(-4, 15)}, got)

	// Pentagon: (−1 ± √5)/2, each twice.
	got, ok = verify.SRGSpectrum(verify.SRG{V: 5, K: 2, Lambda: 0, Mu: 1})
	require.True(t, ok)
	require.Len(t, got, 3)
	require.InDelta(t, (math.Sqrt(5)-1)/2, got[1].Value, 1e-6)
	require.Equal(t, 2, got[1].Multiplicity)

	_, ok = verify.SRGSpectrum(verify.SRG{V: 41, K: 12, Lambda: 2, Mu: 4})
	require.False(t, ok)
}

func TestRunErrors(t *testing.T) {
	_, err := verify.Run(context.Background(), nil, verify.W33())
	require.ErrorIs(t, err, verify.ErrGraphNil)

	g, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = verify.Run(ctx, g, verify.W33())
	require.ErrorIs(t, err, context.Canceled)

	r, err := verify.Run(context.Background(), g, verify.W33(), verify.WithAutomorphismBudget(1))
	require.NoError(t, err)
	c, ok := r.Check(verify.CheckAutomorphisms)
	require.True(t, ok)
	require.Equal(t, verify.OutcomeSkipped, c.Outcome)
	require.Nil(t, r.AutomorphismGroupOrder)
}
