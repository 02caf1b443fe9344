// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/store"
	"github.com/katalvlaran/symgraph/symplectic"
	"github.com/katalvlaran/symgraph/verify"
)

type StoreSuite struct {
	suite.Suite
	ctx context.Context
	s   *store.Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	st, err := store.Open(filepath.Join(s.T().TempDir(), "runs.db"))
	s.Require().NoError(err)
	s.s = st
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.s.Close())
}

func (s *StoreSuite) report(rule symplectic.Rule) (*verify.Report, string) {
	g, err := builder.BuildGraph(nil, builder.Symplectic(symplectic.Standard(), rule))
	s.Require().NoError(err)
	rep, err := verify.Run(s.ctx, g, verify.W33(), verify.WithProfile("w33"), verify.WithoutAutomorphisms())
	s.Require().NoError(err)

	return rep, store.EdgeDigest(g)
}

func (s *StoreSuite) TestRecordAndGet() {
	rep, digest := s.report(symplectic.RuleOrthogonal)
	id, err := s.s.Record(s.ctx, rep, digest)
	s.Require().NoError(err)
	s.Require().Len(id, 36)

	run, err := s.s.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal("w33", run.Profile)
	s.Require().True(run.Passed)
	s.Require().Equal(digest, run.EdgeDigest)
	s.Require().Equal(40, run.Report.VertexCount)
	s.Require().Equal(12, *run.Report.Degree)
	s.Require().Equal(rep.Eigenvalues, run.Report.Eigenvalues)
	s.Require().False(run.CreatedAt.IsZero())

	_, err = s.s.Get(s.ctx, "missing")
	s.Require().ErrorIs(err, store.ErrNotFound)
}

func (s *StoreSuite) TestListNewestFirst() {
	rep, digest := s.report(symplectic.RuleOrthogonal)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := s.s.Record(s.ctx, rep, digest)
		s.Require().NoError(err)
		ids = append(ids, id)
	}

	runs, err := s.s.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(runs, 2)
	s.Require().Equal(ids[2], runs[0].ID)
	s.Require().Equal(ids[1], runs[1].ID)

	all, err := s.s.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
}

func (s *StoreSuite) TestDrift() {
	rep, digest := s.report(symplectic.RuleOrthogonal)
	for i := 0; i < 2; i++ {
		_, err := s.s.Record(s.ctx, rep, digest)
		s.Require().NoError(err)
	}
	d, err := s.s.Drift(s.ctx, "w33")
	s.Require().NoError(err)
	s.Require().Equal(2, d.Runs)
	s.Require().False(d.Drifted())

	other, otherDigest := s.report(symplectic.RuleNonOrthogonal)
	s.Require().NotEqual(digest, otherDigest)
	_, err = s.s.Record(s.ctx, other, otherDigest)
	s.Require().NoError(err)

	d, err = s.s.Drift(s.ctx, "w33")
	s.Require().NoError(err)
	s.Require().Equal(3, d.Runs)
	s.Require().True(d.Drifted())
	s.Require().Equal([]string{digest, otherDigest}, d.Digests)
}

func (s *StoreSuite) TestDigestIsDeterministic() {
	_, a := s.report(symplectic.RuleOrthogonal)
	_, b := s.report(symplectic.RuleOrthogonal)
	s.Require().Equal(a, b)
	s.Require().Len(a, 64)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
