package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// MSTLowerBound returns the weight of a minimum spanning tree of the complete
// graph on dist. Every Hamiltonian path is a spanning tree and every closed
// tour contains one, so the value bounds the optimum from below for both
// Closed settings. dist must be symmetric.
//
// Time:  O(n²) using Prim's algorithm from city 0.
// Space: O(n).
func MSTLowerBound(dist matrix.Matrix) (float64, error) {
	n, err := validateDist(dist, RunOptions{})
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, nil
	}
	ws := prefetch(dist)

	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		total    float64
		it, u, v int
		minW     float64
	)
	for v = range bestCost {
		bestCost[v] = math.Inf(1)
	}
	bestCost[0] = 0

	for it = 0; it < n; it++ {
		// Closest vertex not yet in the tree.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		inTree[u] = true
		total += minW

		for v = 0; v < n; v++ {
			if !inTree[v] && ws.at(u, v) < bestCost[v] {
				bestCost[v] = ws.at(u, v)
			}
		}
	}

	return total, nil
}
