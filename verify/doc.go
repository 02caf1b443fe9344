// Package verify checks a graph against strongly-regular targets and
// produces a structured Report.
//
// Run evaluates every check independently: vertex count, regularity, λ, μ,
// the adjacency spectrum (numeric, and against the closed-form SRG
// eigenvalues), the matrix identity A² = kI + λA + μ(J − I − A), the
// automorphism group order, the diameter and, when lines are supplied, the
// line/adjacency correspondence. A failed check is recorded in
// Report.Checks with an Outcome; it never aborts the run. Run returns an
// error only for unusable input (nil graph) or cancellation.
//
// The JSON form of Report uses the keys vertex_count, degree (or degrees
// when irregular), lambda, mu, eigenvalues, automorphism_group_order and
// is_strongly_regular, plus edge_count, diameter, isotropic_line_count,
// profile and checks.
package verify
