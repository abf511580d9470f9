// Package matrix provides the dense distance-matrix primitives consumed by
// the tsp engine.
//
// The matrix package provides:
//
//   - Matrix, a minimal two-dimensional float64 surface (Rows/Cols/At/Set/Clone).
//   - Dense, a row-major implementation backed by one flat slice.
//   - NewEuclidean, the pairwise Euclidean distance provider for planar points.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateNonNegative) that
//     return plain sentinels so callers can wrap them uniformly.
//
// Matrices are immutable from the point of view of the solvers: no routine in
// tsp ever calls Set on a caller-supplied matrix.
package matrix
