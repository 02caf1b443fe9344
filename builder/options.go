// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves must not panic.

package builder

import "strconv"

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
		c.idSet = true
	}
}

// WithDecimalIDs selects "0","1",... IDs explicitly (also for Symplectic).
func WithDecimalIDs() BuilderOption {
	return WithIDScheme(decimalID)
}

// WithPrefixedIDs selects prefix + decimal index IDs, e.g. "v0","v1",...
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}
