package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// NearestNeighbor builds one tour by always moving to the closest unvisited
// city, starting at opts.Start. Ties go to the lowest city index.
//
// Deterministic; opts.Seed is unused. History is [Length] when recorded.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist matrix.Matrix, opts NearestNeighborOptions) (Result, error) {
	n, err := validateDist(dist, opts.RunOptions)
	if err != nil {
		return Result{}, err
	}
	if n < 2 {
		return trivialResult(opts.RecordHistory), nil
	}
	if err = validateStart("Start", opts.Start, n); err != nil {
		return Result{}, err
	}
	ws := prefetch(dist)

	var (
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = opts.Start
		next    int
		best    float64
		d       float64
		j       int
	)
	tour = append(tour, cur)
	visited[cur] = true
	for len(tour) < n {
		next, best = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			// Strict '<' keeps the lowest index on ties.
			if d = ws.at(cur, j); next == -1 || d < best {
				next, best = j, d
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	res := Result{Tour: tour, Length: ws.length(tour, opts.Closed)}
	if opts.RecordHistory {
		res.History = []float64{res.Length}
	}

	return res, nil
}
