// Package tsp - the tour metric.
//
// TourLength is the objective of every strategy. Internally the strategies
// evaluate tours on a prefetched weights buffer; reversal deltas are O(1) on
// exactly symmetric instances and fall back to a full O(n) re-evaluation
// otherwise.
package tsp

import "github.com/katalvlaran/tsplab/matrix"

// TourLength sums dist[tour[i]][tour[i+1]] over consecutive cities and, if
// closed, adds dist[tour[last]][tour[0]].
//
// Contract:
//   - dist must be square; every index of tour must lie in [0,n).
//   - Tours with fewer than two cities have length 0.
//   - tour need not be a permutation (partial paths are measured as given).
//
// Errors: *ConfigError wrapping ErrNilMatrix, ErrNonSquare or ErrInvalidTour.
//
// Complexity: O(len(tour)).
func TourLength(dist matrix.Matrix, tour []int, closed bool) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, configError("dist", mapMatrixErr(err))
	}
	if len(tour) < 2 {
		return 0, nil
	}
	var (
		n = dist.Rows()
		v int
	)
	for _, v = range tour {
		if v < 0 || v >= n {
			return 0, configError("tour", ErrInvalidTour)
		}
	}

	var (
		sum float64
		w   float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		w, _ = dist.At(tour[i], tour[i+1])
		sum += w
	}
	if closed {
		w, _ = dist.At(tour[len(tour)-1], tour[0])
		sum += w
	}

	return sum, nil
}

// length is TourLength on prefetched weights (no checks).
//
// Complexity: O(n).
func (ws *weights) length(tour []int, closed bool) float64 {
	var (
		sum float64
		i   int
		L   = len(tour)
	)
	if L < 2 {
		return 0
	}
	for i = 0; i+1 < L; i++ {
		sum += ws.w[tour[i]*ws.n+tour[i+1]]
	}
	if closed {
		sum += ws.w[tour[L-1]*ws.n+tour[0]]
	}

	return sum
}

// reversalDelta returns length(tour with [i..k] reversed) − cur, where cur is
// the current length of tour. Indices satisfy 1 ≤ i < k ≤ len(tour)-1.
//
// Symmetric case: only the two boundary edges change.
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// When k is the last position, d is T[0] for closed tours and absent for open
// ones. Asymmetric case: buf (len(tour)) receives the reversed candidate and
// is measured in full.
//
// Complexity: O(1) symmetric, O(n) asymmetric.
func (ws *weights) reversalDelta(tour []int, i, k int, closed bool, cur float64, buf []int) float64 {
	if !ws.symmetric {
		copy(buf, tour)
		reverseSegment(buf, i, k)
		return ws.length(buf, closed) - cur
	}

	var (
		a     = tour[i-1]
		b     = tour[i]
		c     = tour[k]
		delta = ws.at(a, c) - ws.at(a, b)
		d     int
	)
	switch {
	case k+1 < len(tour):
		d = tour[k+1]
	case closed:
		d = tour[0]
	default:
		return delta
	}

	return delta + ws.at(b, d) - ws.at(c, d)
}
