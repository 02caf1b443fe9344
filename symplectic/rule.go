// SPDX-License-Identifier: MIT
package symplectic

import (
	"fmt"

	"github.com/katalvlaran/symgraph/gf3"
)

// Rule is the adjacency convention that turns form values into edges
// between distinct projective points.
type Rule int

const (
	// RuleOrthogonal: u ~ v iff ω(u,v) = 0. Yields the collinearity graph of
	// the symplectic polar space W(3), i.e. SRG(40,12,2,4).
	RuleOrthogonal Rule = iota

	// RuleNonOrthogonal: u ~ v iff ω(u,v) ≠ 0. Yields the complement,
	// SRG(40,27,18,18).
	RuleNonOrthogonal
)

// Rule names as used in profiles and reports.
const (
	nameOrthogonal    = "orthogonal"
	nameNonOrthogonal = "non-orthogonal"
)

// String returns the profile name of the rule.
func (r Rule) String() string {
	switch r {
	case RuleOrthogonal:
		return nameOrthogonal
	case RuleNonOrthogonal:
		return nameNonOrthogonal
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps a profile name to a Rule.
func ParseRule(name string) (Rule, error) {
	switch name {
	case nameOrthogonal, "":
		return RuleOrthogonal, nil
	case nameNonOrthogonal:
		return RuleNonOrthogonal, nil
	default:
		return 0, fmt.Errorf("ParseRule(%q): %w", name, ErrUnknownRule)
	}
}

// Adjacent reports whether the distinct points u and v are joined under rule r.
// Callers are responsible for excluding u == v (the graph is loop-free).
func (f Form) Adjacent(r Rule, u, v gf3.Vector) bool {
	zero := f.Eval(u, v) == gf3.Zero
	if r == RuleNonOrthogonal {
		return !zero
	}

	return zero
}
