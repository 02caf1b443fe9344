// Package matrix offers dense float64 matrices and the handful of numeric
// kernels the verifier needs: adjacency-matrix export from a core.Graph,
// matrix multiplication, symmetry validation and a Jacobi eigen-solver for
// symmetric matrices.
//
// Dense is row-major with a flat backing slice; the kernels take fast paths
// on *Dense and fall back to the Matrix interface otherwise. All loops run in
// fixed i→j order, so results are bit-for-bit reproducible.
//
// Errors are package sentinels (ErrX) wrapped with an operation tag; match
// them with errors.Is.
package matrix
