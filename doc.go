// Package symgraph builds the symplectic graph W(3,3) from GF(3)⁴ and
// verifies that it is the strongly regular graph SRG(40,12,2,4).
//
// 🚀 What is inside?
//
//	• gf3/          — GF(3) elements and 4-dimensional vectors
//	• symplectic/   — alternating forms, the standard form, adjacency rules
//	• projective/   — the 40 points of PG(3,3) and totally isotropic lines
//	• core/         — deterministic, thread-safe simple graph
//	• builder/      — Symplectic, Cycle, Complete and Kneser constructors
//	• matrix/       — dense matrices, adjacency export, Jacobi eigenvalues
//	• bfs/          — breadth-first search, diameter, distance profiles
//	• automorphism/ — automorphism group order by individualisation–refinement
//	• verify/       — structured pass/fail report of every invariant
//	• config/       — YAML verification profiles (embedded default "w33")
//	• store/        — SQLite run history with edge-set digests
//	• telemetry/    — Prometheus stage and check metrics
//	• cmd/w33       — command-line front end
//
// ✨ Quick start
//
//	g, _ := builder.BuildGraph(nil, builder.W33())
//	rep, _ := verify.Run(ctx, g, verify.W33())
//	fmt.Println(rep.IsStronglyRegular, rep.AutomorphismGroupOrder) // true 51840
//
//	go install github.com/katalvlaran/symgraph/cmd/w33@latest
//	w33 verify --format table
package symgraph
