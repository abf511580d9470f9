// Package bench is the benchmark driver: it builds one random instance,
// runs the nearest-neighbour and 2-opt baseline, then the SA → GA pipeline
// and an independent ACO run for every algorithm seed, timing each stage.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/tsplab/instance"
	"github.com/katalvlaran/tsplab/internal/config"
	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/tsp"
)

// Algorithm labels used in records and result files.
const (
	NearestNeighbor = "NN"
	TwoOpt          = "2-opt"
	Annealing       = "SA"
	Genetic         = "GA"
	AntColony       = "ACO"
)

var displayNames = map[string]string{
	NearestNeighbor: "Nearest Neighbor",
	TwoOpt:          "2-opt",
	Annealing:       "Simulated Annealing",
	Genetic:         "Genetic Algorithm",
	AntColony:       "Ant Colony",
}

// ErrUnknownAlgorithm is returned for an algorithm name outside nn, 2opt,
// sa, ga and aco.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

var flagNames = map[string]string{
	"nn":   NearestNeighbor,
	"2opt": TwoOpt,
	"sa":   Annealing,
	"ga":   Genetic,
	"aco":  AntColony,
}

// ParseAlgorithm maps a command-line name (nn, 2opt, sa, ga, aco) to its label.
func ParseAlgorithm(name string) (string, error) {
	if algo, ok := flagNames[name]; ok {
		return algo, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// DisplayName is the long label of an algorithm.
func DisplayName(algo string) string {
	if name, ok := displayNames[algo]; ok {
		return name
	}

	return algo
}

// Record is one timed strategy run.
type Record struct {
	Algorithm string
	Seed      int64
	Tour      []int
	Length    float64
	Elapsed   time.Duration
	History   []float64
}

// Report is the outcome of a full benchmark.
type Report struct {
	Cities     int
	LowerBound float64 // MST weight of the instance
	System     SysInfo
	Baseline   []Record // NN then 2-opt
	Runs       []Record // per seed, in seed order: SA, GA, ACO
}

// LastSeed returns the records of the final seed, or nil.
func (r *Report) LastSeed() []Record {
	if len(r.Runs) < 3 {
		return nil
	}

	return r.Runs[len(r.Runs)-3:]
}

// Runner executes benchmarks for one configuration.
type Runner struct {
	cfg *config.Config
	log *slog.Logger
}

// NewRunner returns a Runner logging to log (slog.Default() when nil).
func NewRunner(cfg *config.Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}

	return &Runner{cfg: cfg, log: log}
}

// Instance builds the configured random instance.
func (r *Runner) Instance() (*matrix.Dense, error) {
	pts, err := instance.Uniform(r.cfg.Cities, r.cfg.InstanceSeed)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	dist, err := matrix.NewEuclidean(pts)
	if err != nil {
		return nil, fmt.Errorf("distance matrix: %w", err)
	}

	return dist, nil
}

// Run executes the baseline and then every seed pipeline, up to
// cfg.Parallel seeds at a time. The first failing seed cancels the rest.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	dist, err := r.Instance()
	if err != nil {
		return nil, err
	}
	lb, err := tsp.MSTLowerBound(dist)
	if err != nil {
		return nil, fmt.Errorf("lower bound: %w", err)
	}
	rep := &Report{Cities: dist.Rows(), LowerBound: lb, System: CollectSysInfo()}
	r.log.Info("benchmark started",
		"cities", rep.Cities, "instance_seed", r.cfg.InstanceSeed, "lower_bound", lb,
		"seeds", r.cfg.Seeds, "system", rep.System.String())

	nn, err := r.timed(NearestNeighbor, 0, r.cfg.NearestNeighborOptions(), dist, nil)
	if err != nil {
		return nil, err
	}
	two, err := r.timed(TwoOpt, 0, r.cfg.TwoOptOptions(), dist, nn.Tour)
	if err != nil {
		return nil, err
	}
	rep.Baseline = []Record{nn, two}
	r.log.Info("baseline done", "improvement", nn.Length-two.Length)

	perSeed := make([][]Record, len(r.cfg.Seeds))
	p := pool.New().
		WithMaxGoroutines(r.cfg.Parallel).
		WithErrors().
		WithContext(ctx).
		WithCancelOnError()
	for i, seed := range r.cfg.Seeds {
		p.Go(func(ctx context.Context) error {
			recs, err := r.seedPipeline(ctx, seed, dist, two.Tour)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			perSeed[i] = recs
			return nil
		})
	}
	if err = p.Wait(); err != nil {
		return nil, err
	}
	for _, recs := range perSeed {
		rep.Runs = append(rep.Runs, recs...)
	}

	return rep, nil
}

// seedPipeline runs SA from the 2-opt tour, GA seeded with the SA tour and
// ACO from scratch.
func (r *Runner) seedPipeline(ctx context.Context, seed int64, dist matrix.Matrix, start []int) ([]Record, error) {
	stages := []struct {
		name string
		imp  tsp.Improver
	}{
		{Annealing, r.cfg.AnnealingOptions(seed)},
		{Genetic, r.cfg.GeneticOptions(seed)},
		{AntColony, r.cfg.AntColonyOptions(seed)},
	}

	var (
		out  = make([]Record, 0, len(stages))
		tour = start
	)
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.timed(st.name, seed, st.imp, dist, tour)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
		tour = rec.Tour
	}

	return out, nil
}

// Solve runs a single strategy on the configured instance. Local searches
// start from the identity tour.
func (r *Runner) Solve(algo string, seed int64) (Record, error) {
	dist, err := r.Instance()
	if err != nil {
		return Record{}, err
	}
	imp, err := r.improver(algo, seed)
	if err != nil {
		return Record{}, err
	}

	return r.timed(algo, seed, imp, dist, nil)
}

func (r *Runner) improver(algo string, seed int64) (tsp.Improver, error) {
	switch algo {
	case NearestNeighbor:
		return r.cfg.NearestNeighborOptions(), nil
	case TwoOpt:
		return r.cfg.TwoOptOptions(), nil
	case Annealing:
		return r.cfg.AnnealingOptions(seed), nil
	case Genetic:
		return r.cfg.GeneticOptions(seed), nil
	case AntColony:
		return r.cfg.AntColonyOptions(seed), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
}

func (r *Runner) timed(algo string, seed int64, imp tsp.Improver, dist matrix.Matrix, init []int) (Record, error) {
	t0 := time.Now()
	res, err := imp.Improve(dist, init)
	elapsed := time.Since(t0)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", algo, err)
	}
	r.log.Info("run finished",
		"algorithm", algo, "seed", seed,
		"length", res.Length, "elapsed", elapsed)

	return Record{
		Algorithm: algo,
		Seed:      seed,
		Tour:      res.Tour,
		Length:    res.Length,
		Elapsed:   elapsed,
		History:   res.History,
	}, nil
}
