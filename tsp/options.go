package tsp

import "math"

// DefaultEps is the acceptance tolerance for 2-opt: a reversal is applied
// only when it shortens the tour by more than DefaultEps. Use Eps=0 to accept
// every strictly shorter reversal.
const DefaultEps = 1e-12

// RunOptions carries the knobs shared by every strategy.
type RunOptions struct {
	// Seed drives all randomness of the run. 0 selects a fixed default seed.
	Seed int64

	// Closed includes the return edge from the last city to the first.
	Closed bool

	// RecordHistory fills Result.History.
	RecordHistory bool

	// AllowAsymmetric accepts dist[i][j] != dist[j][i]. Lengths then use the
	// forward direction of every edge only.
	AllowAsymmetric bool
}

func defaultRunOptions() RunOptions {
	return RunOptions{Closed: true}
}

// NearestNeighborOptions configures NearestNeighbor.
type NearestNeighborOptions struct {
	RunOptions

	// Start is the first city of the tour.
	Start int
}

// DefaultNearestNeighborOptions returns Start=0, closed tours.
func DefaultNearestNeighborOptions() NearestNeighborOptions {
	return NearestNeighborOptions{RunOptions: defaultRunOptions()}
}

// TwoOptOptions configures TwoOpt.
type TwoOptOptions struct {
	RunOptions

	// Eps is the minimal improvement a reversal must bring (Δ < −Eps).
	// 0 accepts any reversal whose exact length is strictly shorter.
	Eps float64

	// MaxMoves bounds the number of accepted reversals (0 ⇒ unlimited).
	MaxMoves int
}

// DefaultTwoOptOptions returns Eps=DefaultEps, unlimited moves.
func DefaultTwoOptOptions() TwoOptOptions {
	return TwoOptOptions{RunOptions: defaultRunOptions(), Eps: DefaultEps}
}

func (o TwoOptOptions) validate() error {
	if o.Eps < 0 || math.IsNaN(o.Eps) {
		return configError("Eps", ErrInvalidParameter)
	}
	if o.MaxMoves < 0 {
		return configError("MaxMoves", ErrInvalidParameter)
	}

	return nil
}

// AnnealingOptions configures SimulatedAnnealing.
type AnnealingOptions struct {
	RunOptions

	// StartTemp is the initial temperature.
	StartTemp float64

	// EndTemp stops the run once the temperature is no longer above it.
	EndTemp float64

	// Alpha is the geometric cooling factor, 0 < Alpha < 1.
	Alpha float64

	// ItersPerTemp is the number of trial moves per temperature level.
	ItersPerTemp int
}

// DefaultAnnealingOptions returns StartTemp=1, EndTemp=1e-4, Alpha=0.995,
// ItersPerTemp=200.
func DefaultAnnealingOptions() AnnealingOptions {
	return AnnealingOptions{
		RunOptions:   defaultRunOptions(),
		StartTemp:    1.0,
		EndTemp:      1e-4,
		Alpha:        0.995,
		ItersPerTemp: 200,
	}
}

func (o AnnealingOptions) validate() error {
	switch {
	case !positive(o.StartTemp):
		return configError("StartTemp", ErrInvalidParameter)
	case !positive(o.EndTemp):
		return configError("EndTemp", ErrInvalidParameter)
	case !(o.Alpha > 0 && o.Alpha < 1):
		return configError("Alpha", ErrInvalidParameter)
	case o.ItersPerTemp < 1:
		return configError("ItersPerTemp", ErrInvalidParameter)
	}

	return nil
}

// GeneticOptions configures Genetic.
type GeneticOptions struct {
	RunOptions

	// PopSize is the fixed population size.
	PopSize int

	// Generations is the number of evolution steps.
	Generations int

	// TournamentK is the tournament sample size (with replacement).
	TournamentK int

	// CrossoverRate is the probability of order crossover; otherwise parent 1 is cloned.
	CrossoverRate float64

	// MutationRate is the probability of one swap mutation per child.
	MutationRate float64

	// EliteSize is the number of best tours copied unchanged to the next generation.
	EliteSize int

	// Workers evaluates fitness on up to Workers goroutines (≤1 ⇒ inline).
	Workers int
}

// DefaultGeneticOptions returns PopSize=200, Generations=500, TournamentK=3,
// CrossoverRate=0.9, MutationRate=0.2, EliteSize=2.
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		RunOptions:    defaultRunOptions(),
		PopSize:       200,
		Generations:   500,
		TournamentK:   3,
		CrossoverRate: 0.9,
		MutationRate:  0.2,
		EliteSize:     2,
	}
}

func (o GeneticOptions) validate() error {
	switch {
	case o.PopSize < 1:
		return configError("PopSize", ErrInvalidParameter)
	case o.Generations < 0:
		return configError("Generations", ErrInvalidParameter)
	case o.TournamentK < 1:
		return configError("TournamentK", ErrInvalidParameter)
	case !probability(o.CrossoverRate):
		return configError("CrossoverRate", ErrInvalidParameter)
	case !probability(o.MutationRate):
		return configError("MutationRate", ErrInvalidParameter)
	case o.EliteSize < 0 || o.EliteSize > o.PopSize:
		return configError("EliteSize", ErrInvalidParameter)
	case o.Workers < 0:
		return configError("Workers", ErrInvalidParameter)
	}

	return nil
}

// AntColonyOptions configures AntColony.
type AntColonyOptions struct {
	RunOptions

	// Ants is the number of agents per iteration.
	Ants int

	// Iterations is the number of construct/evaporate/deposit rounds.
	Iterations int

	// Alpha is the pheromone exponent.
	Alpha float64

	// Beta is the desirability exponent.
	Beta float64

	// Rho is the evaporation rate, 0 ≤ Rho ≤ 1.
	Rho float64

	// Q scales the deposit q/L of the iteration-best tour.
	Q float64

	// InitialPheromone is the uniform starting τ.
	InitialPheromone float64

	// StartCity fixes every ant's start; a negative value draws it per ant.
	StartCity int

	// Workers constructs ants on up to Workers goroutines (≤1 ⇒ inline).
	Workers int
}

// DefaultAntColonyOptions returns Ants=30, Iterations=200, Alpha=1, Beta=5,
// Rho=0.5, Q=1, InitialPheromone=1 and a random start per ant.
func DefaultAntColonyOptions() AntColonyOptions {
	return AntColonyOptions{
		RunOptions:       defaultRunOptions(),
		Ants:             30,
		Iterations:       200,
		Alpha:            1.0,
		Beta:             5.0,
		Rho:              0.5,
		Q:                1.0,
		InitialPheromone: 1.0,
		StartCity:        -1,
	}
}

func (o AntColonyOptions) validate() error {
	switch {
	case o.Ants < 1:
		return configError("Ants", ErrInvalidParameter)
	case o.Iterations < 1:
		return configError("Iterations", ErrInvalidParameter)
	case !nonNegative(o.Alpha):
		return configError("Alpha", ErrInvalidParameter)
	case !nonNegative(o.Beta):
		return configError("Beta", ErrInvalidParameter)
	case !probability(o.Rho):
		return configError("Rho", ErrInvalidParameter)
	case !positive(o.Q):
		return configError("Q", ErrInvalidParameter)
	case !positive(o.InitialPheromone):
		return configError("InitialPheromone", ErrInvalidParameter)
	case o.Workers < 0:
		return configError("Workers", ErrInvalidParameter)
	}

	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

func probability(x float64) bool {
	return x >= 0 && x <= 1
}
