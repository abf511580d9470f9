// Package tsp - genetic algorithm over permutations.
//
// Each generation:
//  1. rank the population by length (stable, ascending);
//  2. carry the EliteSize best tours forward unchanged;
//  3. fill the rest: two tournament parents, order crossover with
//     probability CrossoverRate (else clone parent 1), swap mutation with
//     probability MutationRate;
//  4. evaluate the new population (optionally on Workers goroutines);
//  5. update the running best and record it.
//
// History has Generations+1 entries: the initial best, then one per
// generation, unconditionally.
package tsp

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/tsplab/matrix"
)

// Genetic evolves a population seeded with init (optional, may be nil) and
// random permutations, and returns the best tour ever evaluated.
func Genetic(dist matrix.Matrix, init []int, opts GeneticOptions) (Result, error) {
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
	if init != nil {
		if err = validateInit(init, n); err != nil {
			return Result{}, err
		}
	}

	var (
		ws  = prefetch(dist)
		rng = rngFromSeed(opts.Seed)
		pop = make([][]int, 0, opts.PopSize)
	)
	if init != nil {
		pop = append(pop, CopyTour(init))
	}
	for len(pop) < opts.PopSize {
		pop = append(pop, permRange(n, rng))
	}

	ga := &evolution{
		ws:    ws,
		opts:  opts,
		rng:   rng,
		fit:   make([]float64, opts.PopSize),
		order: make([]int, opts.PopSize),
		used:  make([]bool, n),
	}
	ga.evaluate(pop)

	var (
		bi      = argmin(ga.fit)
		best    = CopyTour(pop[bi])
		bestLen = ga.fit[bi]
		history []float64
		g       int
	)
	if opts.RecordHistory {
		history = make([]float64, 0, opts.Generations+1)
		history = append(history, bestLen)
	}

	for g = 0; g < opts.Generations; g++ {
		pop = ga.next(pop)
		ga.evaluate(pop)

		if bi = argmin(ga.fit); ga.fit[bi] < bestLen {
			bestLen = ga.fit[bi]
			best = CopyTour(pop[bi])
		}
		if opts.RecordHistory {
			history = append(history, bestLen)
		}
	}

	return Result{Tour: best, Length: bestLen, History: history}, nil
}

// evolution is the working state of one Genetic run.
type evolution struct {
	ws    *weights
	opts  GeneticOptions
	rng   *rand.Rand
	fit   []float64 // fit[i] is the length of pop[i]
	order []int     // ranking scratch
	used  []bool    // crossover scratch
}

// evaluate fills ga.fit for pop. Each index writes only its own slot, so the
// result is independent of Workers.
func (ga *evolution) evaluate(pop [][]int) {
	parallelFor(ga.opts.Workers, len(pop), func(i int) {
		ga.fit[i] = ga.ws.length(pop[i], ga.opts.Closed)
	})
}

// next produces the following generation from pop and its fitness.
func (ga *evolution) next(pop [][]int) [][]int {
	var i int
	for i = range ga.order {
		ga.order[i] = i
	}
	sort.SliceStable(ga.order, func(a, b int) bool {
		return ga.fit[ga.order[a]] < ga.fit[ga.order[b]]
	})

	out := make([][]int, 0, ga.opts.PopSize)
	for i = 0; i < ga.opts.EliteSize; i++ {
		out = append(out, CopyTour(pop[ga.order[i]]))
	}

	var (
		n      = ga.ws.n
		p1, p2 []int
		child  []int
	)
	for len(out) < ga.opts.PopSize {
		p1 = ga.tournament(pop)
		p2 = ga.tournament(pop)

		child = make([]int, n)
		if ga.rng.Float64() < ga.opts.CrossoverRate {
			a, b := randomCuts(n, ga.rng)
			orderCrossoverInto(child, p1, p2, a, b, ga.used)
		} else {
			copy(child, p1)
		}
		mutateSwap(child, ga.opts.MutationRate, ga.rng)
		out = append(out, child)
	}

	return out
}

// tournament samples TournamentK individuals uniformly with replacement and
// returns the shortest (first drawn wins ties).
func (ga *evolution) tournament(pop [][]int) []int {
	var (
		bestIdx = -1
		idx     int
		r       int
	)
	for r = 0; r < ga.opts.TournamentK; r++ {
		idx = ga.rng.Intn(len(pop))
		if bestIdx == -1 || ga.fit[idx] < ga.fit[bestIdx] {
			bestIdx = idx
		}
	}

	return pop[bestIdx]
}

// mutateSwap swaps two uniformly drawn positions with probability rate.
// The positions may coincide, leaving the tour unchanged.
func mutateSwap(tour []int, rate float64, rng *rand.Rand) {
	if rng.Float64() >= rate {
		return
	}
	i := rng.Intn(len(tour))
	j := rng.Intn(len(tour))
	tour[i], tour[j] = tour[j], tour[i]
}

// randomCuts draws 0 ≤ a ≤ n−2 and a < b ≤ n−1. Requires n ≥ 2.
func randomCuts(n int, rng *rand.Rand) (int, int) {
	a := rng.Intn(n - 1)
	b := a + 1 + rng.Intn(n-1-a)
	return a, b
}

// OrderCrossover returns the order-crossover child of p1 and p2 for the cut
// points a < b: child[a..b] = p1[a..b]; the remaining positions, left to
// right from position 0, take p2's cities in p2's order, skipping cities
// already copied from p1. The child is always a permutation.
//
// Errors: ErrInvalidTour if the parents are not permutations of the same
// size; ErrInvalidParameter unless 0 ≤ a < b < n.
//
// Complexity: O(n).
func OrderCrossover(p1, p2 []int, a, b int) ([]int, error) {
	var n = len(p1)
	if err := ValidatePermutation(p1, n); err != nil {
		return nil, configError("p1", err)
	}
	if err := ValidatePermutation(p2, n); err != nil {
		return nil, configError("p2", err)
	}
	if a < 0 || a >= b || b >= n {
		return nil, configError("cuts", ErrInvalidParameter)
	}

	child := make([]int, n)
	orderCrossoverInto(child, p1, p2, a, b, make([]bool, n))

	return child, nil
}

// orderCrossoverInto writes the OX child into child. used is scratch of len n.
func orderCrossoverInto(child, p1, p2 []int, a, b int, used []bool) {
	var (
		n  = len(p1)
		i  int
		pi int
	)
	for i = range used {
		used[i] = false
	}
	for i = a; i <= b; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}
	for i = 0; i < n; i++ {
		if i >= a && i <= b {
			continue
		}
		for used[p2[pi]] {
			pi++
		}
		child[i] = p2[pi]
		used[p2[pi]] = true
		pi++
	}
}

// argmin returns the first index of the smallest value.
func argmin(xs []float64) int {
	var (
		bi int
		i  int
	)
	for i = 1; i < len(xs); i++ {
		if xs[i] < xs[bi] {
			bi = i
		}
	}

	return bi
}
