// Package instance generates random planar TSP instances.
//
// Instances are plain coordinate slices; turn them into distance matrices
// with matrix.NewEuclidean. Generation is deterministic under a seed and
// uses its own *rand.Rand, so concurrent callers never share state.
package instance

import (
	"errors"
	"math/rand"
)

// ErrNegativeSize is returned when a negative number of cities is requested.
var ErrNegativeSize = errors.New("instance: negative city count")

// defaultSeed is used when callers pass seed==0, mirroring the tsp RNG policy.
const defaultSeed int64 = 1

// Uniform samples n points uniformly from the unit square [0,1)×[0,1).
// The x coordinate of a point is drawn before its y coordinate.
//
// Complexity: O(n).
func Uniform(n int, seed int64) ([][2]float64, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i][0] = rng.Float64()
		pts[i][1] = rng.Float64()
	}

	return pts, nil
}
