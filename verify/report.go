// SPDX-License-Identifier: MIT
// Package: symgraph/verify
//
// report.go — Report, Check, Outcome and Expect.

package verify

import "math/big"

// Outcome classifies one check.
type Outcome string

const (
	// OutcomePass means the observed value equals the target.
	OutcomePass Outcome = "pass"
	// OutcomeMismatch means a well-defined value differs from the target.
	OutcomeMismatch Outcome = "mismatch"
	// OutcomeStructural means the quantity is undefined for this graph
	// (irregular degree, non-constant λ or μ).
	OutcomeStructural Outcome = "structural"
	// OutcomeSkipped means the check could not be evaluated (search budget,
	// non-convergence); Detail says why.
	OutcomeSkipped Outcome = "skipped"
)

// Check names used in Report.Checks.
const (
	CheckVertexCount    = "vertex_count"
	CheckDegree         = "degree"
	CheckLambda         = "lambda"
	CheckMu             = "mu"
	CheckSpectrum       = "spectrum"
	CheckClosedForm     = "spectrum_closed_form"
	CheckSRGIdentity    = "srg_identity"
	CheckAutomorphisms  = "automorphism_group_order"
	CheckDiameter       = "diameter"
	CheckIsotropicLines = "isotropic_lines"
)

// Check is one independent verification result.
type Check struct {
	Name     string  `json:"name"`
	Outcome  Outcome `json:"outcome"`
	Expected any     `json:"expected,omitempty"`
	Observed any     `json:"observed,omitempty"`
	Detail   string  `json:"detail,omitempty"`
}

// Eigenvalue is a distinct eigenvalue with its multiplicity.
type Eigenvalue struct {
	Value        float64 `json:"value"`
	Multiplicity int     `json:"multiplicity"`
}

// SRG is a strongly-regular parameter tuple.
type SRG struct {
	V      int `json:"v"`
	K      int `json:"k"`
	Lambda int `json:"lambda"`
	Mu     int `json:"mu"`
}

// Expect holds verification targets. Zero-valued optional targets
// (Spectrum nil, AutomorphismOrder nil, Diameter 0, IsotropicLines 0) are
// computed and reported but not judged.
type Expect struct {
	VertexCount       int
	Degree            int
	Lambda            int
	Mu                int
	Spectrum          []Eigenvalue
	AutomorphismOrder *big.Int
	Diameter          int
	IsotropicLines    int
}

// W33 returns the targets of the symplectic graph W(3,3): SRG(40,12,2,4),
// spectrum {12¹, 2²⁴, (−4)¹⁵}, |Aut| = 51840, diameter 2, 40 lines.
func W33() Expect {
	return Expect{
		VertexCount: 40,
		Degree:      12,
		Lambda:      2,
		Mu:          4,
		Spectrum: []Eigenvalue{
			{Value: 12, Multiplicity: 1},
			{Value: 2, Multiplicity: 24},
			{Value: -4, Multiplicity: 15},
		},
		AutomorphismOrder: big.NewInt(51840),
		Diameter:          2,
		IsotropicLines:    40,
	}
}

// Report is the structured result of Run.
type Report struct {
	Profile                string       `json:"profile,omitempty"`
	VertexCount            int          `json:"vertex_count"`
	EdgeCount              int          `json:"edge_count"`
	Degree                 *int         `json:"degree,omitempty"`
	Degrees                []int        `json:"degrees,omitempty"`
	Lambda                 *int         `json:"lambda"`
	Mu                     *int         `json:"mu"`
	Eigenvalues            []Eigenvalue `json:"eigenvalues"`
	AutomorphismGroupOrder *big.Int     `json:"automorphism_group_order"`
	Diameter               *int         `json:"diameter"`
	IsotropicLineCount     *int         `json:"isotropic_line_count,omitempty"`
	IsStronglyRegular      bool         `json:"is_strongly_regular"`
	Checks                 []Check      `json:"checks"`
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	return len(r.Failed()) == 0
}

// Failed returns the checks whose outcome is not OutcomePass.
func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Outcome != OutcomePass {
			out = append(out, c)
		}
	}

	return out
}

// Check returns the named check and whether it is present.
func (r *Report) Check(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}

	return Check{}, false
}

func (r *Report) add(c Check) { r.Checks = append(r.Checks, c) }

func judge(name string, expected, observed any, equal bool) Check {
	c := Check{Name: name, Expected: expected, Observed: observed, Outcome: OutcomePass}
	if !equal {
		c.Outcome = OutcomeMismatch
	}

	return c
}
