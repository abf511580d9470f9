// Package tsp - 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a tour: it scans
// the boundary pairs (i,k), 1 ≤ i < k ≤ n−1, in lexicographic order and
// applies the first reversal of tour[i..k] that shortens the tour by more
// than Eps. After every accepted move the scan restarts from i=1. The search
// stops when a full scan finds no improving move (a 2-opt local optimum) or
// after MaxMoves accepted moves.
//
// Eps=0 accepts any strictly shorter reversal. Each candidate is then
// re-measured in full and applied only when the exact length drops, so the
// tour length strictly decreases and the search terminates.
//
// Reversals never touch position 0, so the whole-tour reversal is excluded.
//
// Complexity:
//   - One scan: O(n²) candidate checks, O(1) each on symmetric instances.
//   - Each accepted move costs O(n) (reversal + exact re-evaluation).
//   - With Eps=0 every negative-delta candidate costs O(n).
package tsp

import "github.com/katalvlaran/tsplab/matrix"

// TwoOpt improves init by first-improvement 2-opt and returns the local
// optimum. init is not modified; a nil init starts from the identity tour.
func TwoOpt(dist matrix.Matrix, init []int, opts TwoOptOptions) (Result, error) {
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
		cur      = CopyTour(init)
		buf      = make([]int, n)
		cost     = ws.length(cur, opts.Closed)
		history  []float64
		accepted int
	)
	if opts.RecordHistory {
		history = append(history, cost)
	}

	for {
		improved := false

		var (
			i, k  int
			delta float64
			exact float64
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				delta = ws.reversalDelta(cur, i, k, opts.Closed, cost, buf)
				if delta >= -opts.Eps {
					continue
				}
				if opts.Eps == 0 {
					// Confirm on the exact length so rounding in delta
					// cannot undo a previous move.
					copy(buf, cur)
					reverseSegment(buf, i, k)
					exact = ws.length(buf, opts.Closed)
					if exact >= cost {
						continue
					}
					cur, buf = buf, cur
					cost = exact
				} else {
					reverseSegment(cur, i, k)
					cost = ws.length(cur, opts.Closed)
				}
				accepted++
				improved = true
				if opts.RecordHistory {
					history = append(history, cost)
				}

				// First-improvement policy: restart scanning from i=1.
				break
			}
		}

		if !improved || (opts.MaxMoves > 0 && accepted >= opts.MaxMoves) {
			break
		}
	}

	return Result{Tour: cur, Length: cost, History: history}, nil
}
