// Package tsp_test provides the fixtures and assertions shared across the
// *_test.go files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsplab/instance"
	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsHist absorbs rounding between a reversal delta and an exact re-measure.
	epsHist = 1e-9

	// seedDet is the canonical deterministic seed.
	seedDet = int64(7)
)

// hide wraps a Matrix to mask its concrete type, forcing the generic
// prefetch path instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// mustDense builds a *matrix.Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// unitSquare is the 4-city instance (0,0), (1,0), (1,1), (0,1).
func unitSquare(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	return m
}

// randomDist is a seeded uniform Euclidean instance with n cities.
func randomDist(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	pts, err := instance.Uniform(n, seed)
	require.NoError(t, err)
	m, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)

	return m
}

// asymmetricDist is a deterministic non-negative asymmetric n×n matrix.
func asymmetricDist(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = float64((i*7+j*3)%11 + 1)
			}
		}
	}

	return mustDense(t, rows)
}

// requirePermutation asserts tour is a permutation of [0,n).
func requirePermutation(t testing.TB, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}

// requireNonIncreasing asserts h never grows by more than epsHist.
func requireNonIncreasing(t testing.TB, h []float64) {
	t.Helper()
	var i int
	for i = 1; i < len(h); i++ {
		require.LessOrEqualf(t, h[i], h[i-1]+epsHist, "history grows at %d: %v", i, h)
	}
}

// requireConsistent asserts the Result contract: a permutation whose
// measured length equals Length, and (when present) a history ending at it.
func requireConsistent(t testing.TB, dist matrix.Matrix, res tsp.Result, closed bool) {
	t.Helper()
	n := dist.Rows()
	requirePermutation(t, res.Tour, n)

	got, err := tsp.TourLength(dist, res.Tour, closed)
	require.NoError(t, err)
	require.InDelta(t, got, res.Length, 1e-12)

	if len(res.History) > 0 {
		requireNonIncreasing(t, res.History)
		require.InDelta(t, res.Length, res.History[len(res.History)-1], 1e-12)
	}
}

// requireTwoOptLocalOptimum checks every reversal 1 ≤ i < k ≤ n−1 by brute force.
func requireTwoOptLocalOptimum(t testing.TB, dist matrix.Matrix, tour []int, closed bool) {
	t.Helper()
	var (
		n    = len(tour)
		base float64
		cand []int
		l    float64
		i, k int
		err  error
	)
	base, err = tsp.TourLength(dist, tour, closed)
	require.NoError(t, err)
	for i = 1; i < n-1; i++ {
		for k = i + 1; k < n; k++ {
			cand = reversed(tour, i, k)
			l, err = tsp.TourLength(dist, cand, closed)
			require.NoError(t, err)
			require.GreaterOrEqualf(t, l, base-epsHist, "improving reversal (%d,%d)", i, k)
		}
	}
}

// reversed returns a copy of tour with [i..k] reversed.
func reversed(tour []int, i, k int) []int {
	out := tsp.CopyTour(tour)
	for i < k {
		out[i], out[k] = out[k], out[i]
		i++
		k--
	}

	return out
}

// fastAnnealing keeps property loops quick.
func fastAnnealing(seed int64) tsp.AnnealingOptions {
	o := tsp.DefaultAnnealingOptions()
	o.Seed = seed
	o.RecordHistory = true
	o.StartTemp = 1
	o.EndTemp = 1e-2
	o.Alpha = 0.9
	o.ItersPerTemp = 50

	return o
}

func fastGenetic(seed int64) tsp.GeneticOptions {
	o := tsp.DefaultGeneticOptions()
	o.Seed = seed
	o.RecordHistory = true
	o.PopSize = 30
	o.Generations = 40

	return o
}

func fastAntColony(seed int64) tsp.AntColonyOptions {
	o := tsp.DefaultAntColonyOptions()
	o.Seed = seed
	o.RecordHistory = true
	o.Ants = 8
	o.Iterations = 15

	return o
}

// sqrt2 is the unit square diagonal.
var sqrt2 = math.Sqrt2
