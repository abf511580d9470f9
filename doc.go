// Package tsplab is a laboratory for heuristic solvers of the symmetric
// Travelling Salesman Problem, from greedy construction to metaheuristics.
//
// What is inside:
//
//	matrix/        - Matrix interface, row-major Dense, validators and the
//	                 Euclidean distance provider
//	instance/      - seeded uniform random instances on the unit square
//	tsp/           - the engine: NearestNeighbor, TwoOpt, SimulatedAnnealing,
//	                 Genetic, AntColony, the Improver capability, Chain and
//	                 the MST lower bound
//	internal/      - benchmark configuration and driver
//	cmd/tsplab/    - command-line entry point
//
// Quick start:
//
//	pts, _ := instance.Uniform(30, 42)
//	dist, _ := matrix.NewEuclidean(pts)
//	res, stages, err := tsp.Chain(dist, nil,
//		tsp.DefaultNearestNeighborOptions(),
//		tsp.DefaultTwoOptOptions(),
//		tsp.DefaultAnnealingOptions(),
//		tsp.DefaultGeneticOptions(),
//	)
//
// Every strategy is deterministic under its Seed and reports invalid input
// as a *tsp.ConfigError; nothing panics on user input.
package tsplab
