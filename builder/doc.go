// Package builder assembles core.Graph instances from deterministic
// constructors configured with functional options.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): fresh graph, resolved config, constructors in order.
//     – Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Constructors:
//     – Symplectic(form, rule): the 40 points of PG(3,3), joined when the
//     form satisfies the adjacency rule (the W33 graph for the defaults).
//     – Cycle(n), Complete(n), Kneser(n, k): reference fixtures with known
//     strongly-regular parameters and automorphism groups.
//   - Vertex-ID schemes (BuilderOption):
//     – WithIDScheme(fn), WithDecimalIDs(), WithPrefixedIDs(prefix).
//     – Symplectic defaults to coordinate IDs ("0001", …, "1222") unless an
//     explicit scheme is set.
//
// Guarantees:
//
//   - Determinism: the same constructors and options always yield the same
//     vertex order and edge list.
//   - Option constructors panic on meaningless inputs (nil functions);
//     constructors themselves never panic and return sentinel errors.
package builder
