// Package tsp - ant colony optimization.
//
// Setup:
//
//	η[i][j] = 1/(d[i][j]+ε), η[i][i] = 0      (immutable for the run)
//	τ[i][j] = InitialPheromone, τ[i][i] = 0  (mutable, owned by the run)
//
// Each iteration every ant starts at StartCity (or a uniform random city) and
// repeatedly moves to an unvisited j drawn with weight τ[cur][j]^α·η[cur][j]^β
// (uniform among unvisited cities when all weights are zero). Afterwards:
//
//	τ ← (1−ρ)·τ
//	τ[a][b] += Q/L_ib and τ[b][a] += Q/L_ib for every edge (a,b) of the
//	iteration-best tour only; the diagonal is re-zeroed.
//
// History has Iterations entries: the global best after each iteration.
//
// Concurrency: ant construction may run on Workers goroutines. Each ant owns
// its scratch buffers and a generator re-seeded every iteration from
// (Seed, iteration, ant), so results do not depend on Workers. Best-tour
// bookkeeping runs after construction, in ant order.
package tsp

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tsplab/matrix"
)

// desirabilityEps keeps 1/(d+ε) finite on zero distances.
const desirabilityEps = 1e-12

// AntColony runs ant colony optimization and returns the best tour found.
func AntColony(dist matrix.Matrix, opts AntColonyOptions) (Result, error) {
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
	if opts.StartCity >= n {
		return Result{}, configError("StartCity", ErrStartOutOfRange)
	}

	c := newColony(prefetch(dist), opts)
	ants := make([]*ant, opts.Ants)
	var a int
	for a = range ants {
		ants[a] = newAnt(n)
	}

	var (
		seed    = normalizeSeed(opts.Seed)
		best    = make([]int, n)
		bestLen = math.Inf(1)
		history []float64
		it      int
		ib      int
	)
	if opts.RecordHistory {
		history = make([]float64, 0, opts.Iterations)
	}

	for it = 0; it < opts.Iterations; it++ {
		c.refreshChoice()
		for a = range ants {
			ants[a].rng.Seed(deriveSeed(seed, uint64(it)*uint64(opts.Ants)+uint64(a)))
		}
		parallelFor(opts.Workers, len(ants), func(i int) {
			c.construct(ants[i])
		})

		ib = 0
		for a = range ants {
			if ants[a].length < ants[ib].length {
				ib = a
			}
			if ants[a].length < bestLen {
				bestLen = ants[a].length
				copy(best, ants[a].tour)
			}
		}
		if opts.RecordHistory {
			history = append(history, bestLen)
		}

		c.evaporate()
		c.deposit(ants[ib].tour, ants[ib].length)
	}

	return Result{Tour: best, Length: bestLen, History: history}, nil
}

// colony is the explicit pheromone state of one AntColony run.
type colony struct {
	n      int
	ws     *weights
	opts   AntColonyOptions
	eta    []float64 // desirability, row-major n×n
	tau    []float64 // pheromone, row-major n×n
	choice []float64 // τ^α·η^β, refreshed once per iteration
}

func newColony(ws *weights, opts AntColonyOptions) *colony {
	var (
		n = ws.n
		c = &colony{
			n:      n,
			ws:     ws,
			opts:   opts,
			eta:    make([]float64, n*n),
			tau:    make([]float64, n*n),
			choice: make([]float64, n*n),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c.eta[i*n+j] = 1.0 / (ws.at(i, j) + desirabilityEps)
			c.tau[i*n+j] = opts.InitialPheromone
		}
	}

	return c
}

// refreshChoice recomputes the roulette weights from the current τ.
func (c *colony) refreshChoice() {
	var (
		alpha = c.opts.Alpha
		beta  = c.opts.Beta
		i     int
	)
	for i = range c.choice {
		c.choice[i] = math.Pow(c.tau[i], alpha) * math.Pow(c.eta[i], beta)
	}
}

// evaporate multiplies every pheromone entry by (1−ρ).
func (c *colony) evaporate() {
	var (
		keep = 1 - c.opts.Rho
		i    int
	)
	for i = range c.tau {
		c.tau[i] *= keep
	}
}

// deposit reinforces both directions of every edge of tour by Q/length, then
// re-zeroes the diagonal. A zero-length tour (all cities coincide) deposits
// nothing.
func (c *colony) deposit(tour []int, length float64) {
	if !(length > 0) {
		return
	}
	var (
		n      = c.n
		amount = c.opts.Q / length
		i      int
	)
	add := func(a, b int) {
		c.tau[a*n+b] += amount
		c.tau[b*n+a] += amount
	}
	for i = 0; i+1 < n; i++ {
		add(tour[i], tour[i+1])
	}
	if c.opts.Closed {
		add(tour[n-1], tour[0])
	}
	for i = 0; i < n; i++ {
		c.tau[i*n+i] = 0
	}
}

// ant is the per-agent scratch state; it is reused across iterations.
type ant struct {
	rng     *rand.Rand
	tour    []int
	visited []bool
	cand    []int     // unvisited cities, ascending
	wts     []float64 // roulette weights aligned with cand
	length  float64
}

func newAnt(n int) *ant {
	return &ant{
		rng:     rand.New(rand.NewSource(defaultRNGSeed)),
		tour:    make([]int, n),
		visited: make([]bool, n),
		cand:    make([]int, 0, n),
		wts:     make([]float64, n),
	}
}

// construct builds one complete tour for a and measures it.
func (c *colony) construct(a *ant) {
	var (
		n     = c.n
		start = c.opts.StartCity
		cur   int
		step  int
		i     int
	)
	if start < 0 {
		start = a.rng.Intn(n)
	}
	for i = range a.visited {
		a.visited[i] = false
	}

	a.tour[0] = start
	a.visited[start] = true
	cur = start
	for step = 1; step < n; step++ {
		cur = c.pickNext(a, cur)
		a.tour[step] = cur
		a.visited[cur] = true
	}
	a.length = c.ws.length(a.tour, c.opts.Closed)
}

// pickNext draws the next city by roulette wheel over the unvisited cities.
// Degenerate wheels fall back to a uniform choice: all-zero (or NaN) totals
// pick among every unvisited city, and infinite weights pick among the
// infinite-weight cities. Finite weights whose sum overflows are divided by
// their maximum before the draw.
func (c *colony) pickNext(a *ant, cur int) int {
	var (
		row   = c.choice[cur*c.n : (cur+1)*c.n]
		total float64
		j     int
	)
	a.cand = a.cand[:0]
	for j = 0; j < c.n; j++ {
		if a.visited[j] {
			continue
		}
		a.wts[len(a.cand)] = row[j]
		a.cand = append(a.cand, j)
		total += row[j]
	}

	if math.IsInf(total, 1) {
		var (
			inf = a.cand[:0:0]
			idx int
		)
		for idx, j = range a.cand {
			if math.IsInf(a.wts[idx], 1) {
				inf = append(inf, j)
			}
		}
		if len(inf) > 0 {
			return inf[a.rng.Intn(len(inf))]
		}
		total = rescale(a.wts[:len(a.cand)])
	}
	if !(total > 0) {
		return a.cand[a.rng.Intn(len(a.cand))]
	}

	var (
		r   = a.rng.Float64() * total
		cum float64
		idx int
	)
	for idx, j = range a.cand {
		cum += a.wts[idx]
		if r < cum {
			return j
		}
	}

	return a.cand[len(a.cand)-1]
}

// rescale divides w by its largest entry in place and returns the new sum.
// Every entry must be finite and non-negative.
func rescale(w []float64) float64 {
	var (
		maxW  = floats.Max(w)
		total float64
		idx   int
	)
	if !(maxW > 0) {
		return 0
	}
	for idx = range w {
		w[idx] /= maxW
		total += w[idx]
	}

	return total
}
