package tsp

import "github.com/katalvlaran/tsplab/matrix"

// Improver is the shared capability of every strategy: given a distance
// matrix and an (optional) starting tour, produce a Result.
//
// Each options type implements Improver, so a configured strategy can be used
// directly as a pipeline stage:
//
//	res, stages, err := tsp.Chain(dist, nil,
//		tsp.DefaultNearestNeighborOptions(),
//		tsp.DefaultTwoOptOptions(),
//		tsp.DefaultAnnealingOptions(),
//	)
type Improver interface {
	Improve(dist matrix.Matrix, init []int) (Result, error)
}

// ImproverFunc adapts a plain function to Improver.
type ImproverFunc func(dist matrix.Matrix, init []int) (Result, error)

// Improve calls f(dist, init).
func (f ImproverFunc) Improve(dist matrix.Matrix, init []int) (Result, error) {
	return f(dist, init)
}

// Improve runs NearestNeighbor. A non-empty init only contributes its first
// city as the start.
func (o NearestNeighborOptions) Improve(dist matrix.Matrix, init []int) (Result, error) {
	if len(init) > 0 {
		o.Start = init[0]
	}

	return NearestNeighbor(dist, o)
}

// Improve runs TwoOpt from init.
func (o TwoOptOptions) Improve(dist matrix.Matrix, init []int) (Result, error) {
	return TwoOpt(dist, init, o)
}

// Improve runs SimulatedAnnealing from init.
func (o AnnealingOptions) Improve(dist matrix.Matrix, init []int) (Result, error) {
	return SimulatedAnnealing(dist, init, o)
}

// Improve runs Genetic with init as one member of the initial population.
func (o GeneticOptions) Improve(dist matrix.Matrix, init []int) (Result, error) {
	return Genetic(dist, init, o)
}

// Improve runs AntColony; init is ignored.
func (o AntColonyOptions) Improve(dist matrix.Matrix, _ []int) (Result, error) {
	return AntColony(dist, o)
}

// Chain runs stages in order, feeding each stage the previous stage's best
// tour (the first stage receives init). It returns the last stage's result
// and every stage result in order. The first failing stage aborts the chain;
// its error is returned together with the results gathered so far.
func Chain(dist matrix.Matrix, init []int, stages ...Improver) (Result, []Result, error) {
	if len(stages) == 0 {
		return Result{}, nil, configError("stages", ErrInvalidParameter)
	}

	var (
		all  = make([]Result, 0, len(stages))
		tour = init
		res  Result
		err  error
	)
	for _, st := range stages {
		if res, err = st.Improve(dist, tour); err != nil {
			return Result{}, all, err
		}
		all = append(all, res)
		tour = res.Tour
	}

	return res, all, nil
}
