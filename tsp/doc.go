// Package tsp provides heuristic solvers for the symmetric Travelling
// Salesman Problem on a distance matrix (matrix.Matrix).
//
// Strategies:
//
//   - NearestNeighbor: greedy construction from a start city, O(n²).
//   - TwoOpt: deterministic first-improvement 2-opt descent; the scan
//     restarts from i=1 after every accepted reversal, O(n²) per scan.
//   - SimulatedAnnealing: random 2-opt reversals under the Metropolis rule
//     with geometric cooling.
//   - Genetic: elitism, tournament selection, order crossover, swap mutation.
//   - AntColony: roulette-wheel construction on τ^α·η^β with evaporation and
//     iteration-best deposit.
//
// A tour is a permutation of [0,n). Every strategy returns a Result carrying
// the best tour, its length and, when RecordHistory is set, the convergence
// history. Instances with n<2 are a fixed point: Tour [0], Length 0 and
// History [0].
//
// Every option struct embeds RunOptions (Seed, Closed, RecordHistory,
// AllowAsymmetric). All randomness comes from a *rand.Rand built from Seed
// at entry; the same seed and inputs give bit-identical results, for every
// Workers setting. Each option struct also implements Improver, so strategies
// can be composed with Chain, each stage consuming the previous best tour.
//
// Invalid input is reported as a *ConfigError wrapping one of the sentinels
// in types.go; nothing panics on user input.
package tsp
