// Package config loads the benchmark driver settings from the environment.
//
// Every variable carries the TSPLAB_ prefix, for example TSPLAB_CITIES or
// TSPLAB_SA_ALPHA. Defaults reproduce the reference benchmark: 30 cities
// from instance seed 42, three algorithm seeds, and the SA/GA/ACO settings
// below.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/tsplab/tsp"
)

// Prefix is prepended to every environment variable name.
const Prefix = "TSPLAB_"

// Config is the full benchmark driver configuration.
type Config struct {
	Cities       int     `env:"CITIES" envDefault:"30" validate:"gte=0"`
	InstanceSeed int64   `env:"INSTANCE_SEED" envDefault:"42"`
	Seeds        []int64 `env:"SEEDS" envDefault:"1,2,3" validate:"min=1,unique,dive,ne=0"`
	Parallel     int     `env:"PARALLEL" envDefault:"1" validate:"gte=1"` // seeds run concurrently
	Open         bool    `env:"OPEN" envDefault:"false"`                  // measure open paths
	LogLevel     string  `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	Annealing Annealing `envPrefix:"SA_"`
	Genetic   Genetic   `envPrefix:"GA_"`
	AntColony AntColony `envPrefix:"ACO_"`
	Output    Output    `envPrefix:"OUTPUT_"`
}

// Annealing holds the TSPLAB_SA_* simulated annealing settings.
type Annealing struct {
	StartTemp    float64 `env:"START_TEMP" envDefault:"0.5" validate:"gt=0"`
	EndTemp      float64 `env:"END_TEMP" envDefault:"1e-4" validate:"gt=0,ltfield=StartTemp"`
	Alpha        float64 `env:"ALPHA" envDefault:"0.995" validate:"gt=0,lt=1"`
	ItersPerTemp int     `env:"ITERS_PER_TEMP" envDefault:"300" validate:"gte=1"`
}

// Genetic holds the TSPLAB_GA_* genetic algorithm settings.
type Genetic struct {
	PopSize       int     `env:"POP_SIZE" envDefault:"250" validate:"gte=1"`
	Generations   int     `env:"GENERATIONS" envDefault:"600" validate:"gte=0"`
	TournamentK   int     `env:"TOURNAMENT_K" envDefault:"4" validate:"gte=1"`
	CrossoverRate float64 `env:"CROSSOVER_RATE" envDefault:"0.9" validate:"gte=0,lte=1"`
	MutationRate  float64 `env:"MUTATION_RATE" envDefault:"0.25" validate:"gte=0,lte=1"`
	EliteSize     int     `env:"ELITE_SIZE" envDefault:"3" validate:"gte=0,ltefield=PopSize"`
	Workers       int     `env:"WORKERS" envDefault:"0" validate:"gte=0"`
}

// AntColony holds the TSPLAB_ACO_* ant colony settings.
type AntColony struct {
	Ants             int     `env:"ANTS" envDefault:"30" validate:"gte=1"`
	Iterations       int     `env:"ITERATIONS" envDefault:"200" validate:"gte=1"`
	Alpha            float64 `env:"ALPHA" envDefault:"1" validate:"gte=0"`
	Beta             float64 `env:"BETA" envDefault:"5" validate:"gte=0"`
	Rho              float64 `env:"RHO" envDefault:"0.5" validate:"gte=0,lte=1"`
	Q                float64 `env:"Q" envDefault:"1" validate:"gt=0"`
	InitialPheromone float64 `env:"INITIAL_PHEROMONE" envDefault:"1" validate:"gt=0"`
	Workers          int     `env:"WORKERS" envDefault:"0" validate:"gte=0"`
}

// Output holds the TSPLAB_OUTPUT_* file locations.
type Output struct {
	Dir     string `env:"DIR" envDefault:"data/outputs" validate:"required"`
	Results string `env:"RESULTS" envDefault:"results.txt" validate:"required"`
	History string `env:"HISTORY" envDefault:"convergence.csv"` // empty disables
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Only the first error, to keep the log readable.
			return nil, fmt.Errorf("config: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags. Call it again after applying overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Closed reports whether tour lengths include the return edge.
func (c *Config) Closed() bool { return !c.Open }

// ResultsPath is the results table location.
func (c *Config) ResultsPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Results)
}

// HistoryPath is the convergence CSV location, or "" when disabled.
func (c *Config) HistoryPath() string {
	if c.Output.History == "" {
		return ""
	}

	return filepath.Join(c.Output.Dir, c.Output.History)
}

func (c *Config) run(seed int64, history bool) tsp.RunOptions {
	return tsp.RunOptions{Seed: seed, Closed: c.Closed(), RecordHistory: history}
}

// NearestNeighborOptions is the baseline construction from city 0.
func (c *Config) NearestNeighborOptions() tsp.NearestNeighborOptions {
	o := tsp.DefaultNearestNeighborOptions()
	o.RunOptions = c.run(0, true)

	return o
}

// TwoOptOptions is the baseline local search.
func (c *Config) TwoOptOptions() tsp.TwoOptOptions {
	o := tsp.DefaultTwoOptOptions()
	o.RunOptions = c.run(0, true)

	return o
}

// AnnealingOptions is the simulated annealing run for seed, with history.
func (c *Config) AnnealingOptions(seed int64) tsp.AnnealingOptions {
	return tsp.AnnealingOptions{
		RunOptions:   c.run(seed, true),
		StartTemp:    c.Annealing.StartTemp,
		EndTemp:      c.Annealing.EndTemp,
		Alpha:        c.Annealing.Alpha,
		ItersPerTemp: c.Annealing.ItersPerTemp,
	}
}

// GeneticOptions is the genetic algorithm run for seed, with history.
func (c *Config) GeneticOptions(seed int64) tsp.GeneticOptions {
	return tsp.GeneticOptions{
		RunOptions:    c.run(seed, true),
		PopSize:       c.Genetic.PopSize,
		Generations:   c.Genetic.Generations,
		TournamentK:   c.Genetic.TournamentK,
		CrossoverRate: c.Genetic.CrossoverRate,
		MutationRate:  c.Genetic.MutationRate,
		EliteSize:     c.Genetic.EliteSize,
		Workers:       c.Genetic.Workers,
	}
}

// AntColonyOptions is the ant colony run for seed, with history.
func (c *Config) AntColonyOptions(seed int64) tsp.AntColonyOptions {
	o := tsp.DefaultAntColonyOptions()
	o.RunOptions = c.run(seed, true)
	o.Ants = c.AntColony.Ants
	o.Iterations = c.AntColony.Iterations
	o.Alpha = c.AntColony.Alpha
	o.Beta = c.AntColony.Beta
	o.Rho = c.AntColony.Rho
	o.Q = c.AntColony.Q
	o.InitialPheromone = c.AntColony.InitialPheromone
	o.Workers = c.AntColony.Workers

	return o
}
