// SPDX-License-Identifier: MIT

// Package matrix: pairwise Euclidean distance provider.
package matrix

import "math"

// NewEuclidean builds the n×n matrix of Euclidean distances between planar
// points. The result is exactly symmetric (each pair is computed once and
// mirrored) with a zero diagonal. Zero points yield a 0×0 matrix.
//
// Returns ErrNaNInf if any coordinate is not finite.
//
// Complexity: O(n²) time and memory.
func NewEuclidean(points [][2]float64) (*Dense, error) {
	var n = len(points)
	if n == 0 {
		return &Dense{}, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !finite(points[i][0]) || !finite(points[i][1]) {
			return nil, ErrNaNInf
		}
	}

	data := make([]float64, n*n)
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &Dense{r: n, c: n, data: data}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
