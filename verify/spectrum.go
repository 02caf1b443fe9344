// SPDX-License-Identifier: MIT
// Package: symgraph/verify
//
// spectrum.go — numeric and closed-form adjacency spectra.

package verify

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/matrix"
)

const (
	// eigenTol is the Jacobi convergence threshold on off-diagonal entries.
	eigenTol = 1e-10
	// eigenMaxIter caps Jacobi rotations.
	eigenMaxIter = 200000
	// roundTo is the grid eigenvalues are rounded to before grouping.
	roundTo = 1e-6
	// roundScale is 1/roundTo, kept exact so integers round-trip.
	roundScale = 1e6
)

// Spectrum returns the distinct adjacency eigenvalues of g, rounded to 1e-6
// and sorted in descending order, with their multiplicities.
func Spectrum(g *core.Graph) ([]Eigenvalue, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	vals, _, err := matrix.Eigen(am.Mat, eigenTol, eigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}

	return group(vals), nil
}

// group rounds values to roundTo and merges equal ones, descending.
func group(vals []float64) []Eigenvalue {
	rounded := make([]float64, len(vals))
	for i, v := range vals {
		rounded[i] = round(v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(rounded)))

	var out []Eigenvalue
	for _, v := range rounded {
		if n := len(out); n > 0 && out[n-1].Value == v {
			out[n-1].Multiplicity++
			continue
		}
		out = append(out, Eigenvalue{Value: v, Multiplicity: 1})
	}

	return out
}

func round(v float64) float64 {
	r := math.Round(v*roundScale) / roundScale
	if r == 0 {
		return 0 // drop the sign of -0
	}

	return r
}

// SRGSpectrum returns the eigenvalues of any SRG(v,k,λ,μ) from its
// parameters: k once, and r,s = ((λ−μ) ± √Δ)/2 with Δ = (λ−μ)² + 4(k−μ)
// and multiplicities ½[(v−1) ∓ (2k + (v−1)(λ−μ))/√Δ]. Eigenvalues with
// zero multiplicity are omitted and equal values merged (k = r when μ = 0). ok is false when the parameters are not
// feasible (non-integral or negative multiplicities).
func SRGSpectrum(p SRG) ([]Eigenvalue, bool) {
	d := float64(p.Lambda - p.Mu)
	delta := d*d + 4*float64(p.K-p.Mu)
	if delta <= 0 {
		return nil, false
	}
	sq := math.Sqrt(delta)
	r, s := (d+sq)/2, (d-sq)/2
	lead := float64(2*p.K) + float64(p.V-1)*d
	f := (float64(p.V-1) - lead/sq) / 2
	gm := (float64(p.V-1) + lead/sq) / 2

	fi, gi := math.Round(f), math.Round(gm)
	if math.Abs(f-fi) > roundTo || math.Abs(gm-gi) > roundTo || fi < 0 || gi < 0 {
		return nil, false
	}

	out := []Eigenvalue{{Value: round(float64(p.K)), Multiplicity: 1}}
	for _, e := range []Eigenvalue{{Value: round(r), Multiplicity: int(fi)}, {Value: round(s), Multiplicity: int(gi)}} {
		if e.Multiplicity > 0 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	merged := out[:1]
	for _, e := range out[1:] {
		if last := &merged[len(merged)-1]; last.Value == e.Value {
			last.Multiplicity += e.Multiplicity
			continue
		}
		merged = append(merged, e)
	}

	return merged, true
}

// sameSpectrum compares two grouped spectra within roundTo.
func sameSpectrum(a, b []Eigenvalue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Multiplicity != b[i].Multiplicity || math.Abs(a[i].Value-b[i].Value) > roundTo {
			return false
		}
	}

	return true
}
