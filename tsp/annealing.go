// Package tsp - simulated annealing over the 2-opt neighbourhood.
//
// State machine over temperature T:
//
//	T = StartTemp
//	while T > EndTemp:
//	    repeat ItersPerTemp times:
//	        draw 1 ≤ i ≤ n−2, i < k ≤ n−1; Δ = len(reverse(cur, i, k)) − len(cur)
//	        accept if Δ < 0, else with probability exp(−Δ/T)
//	        if cur beats best: best = copy(cur), record
//	    T *= Alpha
//
// The current tour random-walks under the Metropolis rule; the best-ever tour
// is a separate snapshot, overwritten only on strict improvement. History is
// the initial length followed by one entry per overwrite.
package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// SimulatedAnnealing refines init and returns the best tour visited.
// A nil init starts from the identity tour. Instances with n<3 admit no
// reversal pair and return init unchanged.
//
// Complexity: O(levels·ItersPerTemp) moves, O(1) each on symmetric instances,
// where levels = ⌈log(EndTemp/StartTemp)/log(Alpha)⌉.
func SimulatedAnnealing(dist matrix.Matrix, init []int, opts AnnealingOptions) (Result, error) {
	n, err := validateDist(dist, opts.RunOptions)
	if err != nil {
		return Result{}, err
	}
	if err = opts.validate(); err != nil {
		return Result{}, err
	}
	if n < 2 {
		return trivialResult(opts.RecordHistory), nil
	}
	if init == nil {
		init = identityTour(n)
	} else if err = validateInit(init, n); err != nil {
		return Result{}, err
	}
	ws := prefetch(dist)

	var (
		closed  = opts.Closed
		cur     = CopyTour(init)
		curLen  = ws.length(cur, closed)
		best    = CopyTour(init)
		bestLen = curLen
		history []float64
	)
	if opts.RecordHistory {
		history = append(history, bestLen)
	}
	if n < 3 {
		return Result{Tour: best, Length: bestLen, History: history}, nil
	}

	var (
		rng   = rngFromSeed(opts.Seed)
		buf   = make([]int, n)
		temp  = opts.StartTemp
		it    int
		i, k  int
		delta float64
	)
	for temp > opts.EndTemp {
		for it = 0; it < opts.ItersPerTemp; it++ {
			i = 1 + rng.Intn(n-2)
			k = i + 1 + rng.Intn(n-1-i)

			delta = ws.reversalDelta(cur, i, k, closed, curLen, buf)
			if delta >= 0 && rng.Float64() >= math.Exp(-delta/temp) {
				continue
			}
			reverseSegment(cur, i, k)
			curLen += delta

			if curLen < bestLen {
				// Re-measure exactly so drift never leaks into best or history.
				curLen = ws.length(cur, closed)
				if curLen < bestLen {
					copy(best, cur)
					bestLen = curLen
					if opts.RecordHistory {
						history = append(history, bestLen)
					}
				}
			}
		}
		temp *= opts.Alpha
	}

	return Result{Tour: best, Length: bestLen, History: history}, nil
}
