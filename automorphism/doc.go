// Package automorphism computes automorphism groups and isomorphisms of
// simple graphs by individualisation–refinement.
//
// Method
//
//   - Colour refinement (1-dimensional Weisfeiler–Leman) runs jointly on two
//     colourings; a vertex's next colour is its current colour together with
//     the multiset of its neighbours' colours. Diverging colour histograms
//     prove that no mapping extends the current partial one.
//   - When refinement stalls, the smallest non-singleton cell is split by
//     individualising its lowest vertex against every candidate of the same
//     colour on the other side (backtracking).
//   - GroupOrder walks the individualisation base b₀,b₁,… and multiplies the
//     orbit sizes |b_i^{G_(b₀..b_{i-1})}| (orbit–stabiliser). Orbits are
//     closed under the generators found so far so known members skip search.
//
// The order is exact and returned as *big.Int. Every generator reported in
// Group is a verified automorphism.
//
// Complexity: exponential in the worst case; refinement keeps the search
// tree small for vertex-transitive graphs of a few hundred vertices.
package automorphism
