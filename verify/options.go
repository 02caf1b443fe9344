// SPDX-License-Identifier: MIT
// Package: symgraph/verify
//
// options.go — functional options for Run.

package verify

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/symgraph/projective"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger        *slog.Logger
	profile       string
	lines         []projective.Line
	stageHook     func(stage string, elapsed time.Duration)
	autBudget     int
	skipAutGroups bool
}

func newRunConfig(opts []Option) runConfig {
	cfg := runConfig{
		logger:    slog.New(slog.DiscardHandler),
		stageHook: func(string, time.Duration) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes stage and check logs to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProfile stamps the report with a profile name.
func WithProfile(name string) Option {
	return func(c *runConfig) { c.profile = name }
}

// WithLines supplies totally isotropic lines as vertex positions (core index
// order). Run then reports their count and checks that two vertices are
// adjacent exactly when some line contains both.
func WithLines(lines []projective.Line) Option {
	return func(c *runConfig) { c.lines = lines }
}

// WithStageHook is called after each stage with its wall-clock duration.
func WithStageHook(fn func(stage string, elapsed time.Duration)) Option {
	return func(c *runConfig) {
		if fn != nil {
			c.stageHook = fn
		}
	}
}

// WithAutomorphismBudget caps the automorphism search (0 = unlimited).
// An exhausted budget marks the check as skipped.
func WithAutomorphismBudget(maxNodes int) Option {
	return func(c *runConfig) {
		if maxNodes >= 0 {
			c.autBudget = maxNodes
		}
	}
}

// WithoutAutomorphisms skips the automorphism group computation.
func WithoutAutomorphisms() Option {
	return func(c *runConfig) { c.skipAutGroups = true }
}
