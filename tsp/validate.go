// Package tsp - validation utilities shared by all strategies.
//
// This file contains small helpers that:
//  1. Validate distance matrices (shape, finiteness, negativity, symmetry).
//  2. Validate auxiliary inputs (initial tours, start cities).
//  3. Prefetch the matrix into a flat buffer for the hot loops.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only *ConfigError wrapping the
//     sentinels from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"errors"

	"github.com/katalvlaran/tsplab/matrix"
)

// symTol is the structural tolerance for the symmetry check.
// It is independent from TwoOptOptions.Eps (which governs "improvement").
const symTol = 1e-12

// validateDist verifies the distance matrix and returns its order n.
// n==0 and n==1 are valid; callers return the trivial result for them.
//
// Complexity: O(n²).
func validateDist(dist matrix.Matrix, run RunOptions) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, configError("dist", mapMatrixErr(err))
	}
	if err := matrix.ValidateNonNegative(dist); err != nil {
		return 0, configError("dist", mapMatrixErr(err))
	}
	if !run.AllowAsymmetric {
		if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
			return 0, configError("dist", mapMatrixErr(err))
		}
	}

	return dist.Rows(), nil
}

// mapMatrixErr translates matrix sentinels into tsp sentinels.
func mapMatrixErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNilMatrix):
		return ErrNilMatrix
	case errors.Is(err, matrix.ErrNonSquare):
		return ErrNonSquare
	case errors.Is(err, matrix.ErrNegative):
		return ErrNegativeDistance
	case errors.Is(err, matrix.ErrNaNInf):
		return ErrNonFinite
	case errors.Is(err, matrix.ErrAsymmetry):
		return ErrAsymmetric
	default:
		return ErrNonSquare
	}
}

// validateInit checks that init is a permutation of [0,n).
func validateInit(init []int, n int) error {
	if err := ValidatePermutation(init, n); err != nil {
		return configError("init", err)
	}

	return nil
}

// validateStart verifies that start∈[0..n-1].
func validateStart(field string, start, n int) error {
	if start < 0 || start >= n {
		return configError(field, ErrStartOutOfRange)
	}

	return nil
}

// weights is a dense, row-major snapshot of the distance matrix.
// w[u*n+v] == dist.At(u, v). Building it once per run removes interface
// indirection from hot loops; the caller's matrix is never touched again.
type weights struct {
	n         int
	w         []float64
	symmetric bool // exact symmetry; enables O(1) reversal deltas
}

// prefetch copies dist into a weights buffer. dist must be validated.
//
// Complexity: O(n²).
func prefetch(dist matrix.Matrix) *weights {
	var n = dist.Rows()
	var w []float64
	if d, ok := dist.(*matrix.Dense); ok {
		w = d.Flat()
	} else {
		w = make([]float64, n*n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w[i*n+j], _ = dist.At(i, j) // in range after validateDist
			}
		}
	}

	sym := true
	var i, j int
	for i = 0; i < n && sym; i++ {
		for j = i + 1; j < n; j++ {
			if w[i*n+j] != w[j*n+i] {
				sym = false
				break
			}
		}
	}

	return &weights{n: n, w: w, symmetric: sym}
}

// at returns the weight of the directed edge u→v.
func (ws *weights) at(u, v int) float64 { return ws.w[u*ws.n+v] }
