package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Validation failures are wrapped in *ConfigError; match them
// with errors.Is.
var (
	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNegativeDistance is returned for a negative off-diagonal distance.
	ErrNegativeDistance = errors.New("tsp: negative distance")

	// ErrNonFinite is returned for a NaN or ±Inf off-diagonal distance.
	ErrNonFinite = errors.New("tsp: non-finite distance")

	// ErrAsymmetric is returned when dist[i][j] != dist[j][i] and the caller did
	// not set AllowAsymmetric.
	ErrAsymmetric = errors.New("tsp: asymmetric distance matrix")

	// ErrInvalidTour is returned when a tour is not a permutation of [0,n).
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the cities")

	// ErrStartOutOfRange is returned when a start city is outside [0,n).
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrInvalidParameter is returned for a tunable outside its documented range.
	ErrInvalidParameter = errors.New("tsp: invalid parameter")
)

// ConfigError reports which input or parameter failed validation.
type ConfigError struct {
	// Field names the offending input ("dist", "init", "Alpha", ...).
	Field string

	// Err is one of the package sentinels.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configError(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}

// Result holds the outcome of a strategy run.
type Result struct {
	// Tour is the best visiting order found, a permutation of [0,n).
	Tour []int

	// Length is the length of Tour under the run's Closed setting.
	Length float64

	// History holds the recorded best-so-far lengths (nil unless
	// RecordHistory). Recording cadence differs per strategy:
	//   - NearestNeighbor: [Length].
	//   - TwoOpt: initial length, then one entry per accepted reversal.
	//   - SimulatedAnnealing: initial length, then one entry per new best.
	//   - Genetic: initial best, then one entry per generation.
	//   - AntColony: one entry per iteration.
	History []float64
}

// trivialResult is the n<2 fixed point.
func trivialResult(record bool) Result {
	res := Result{Tour: []int{0}, Length: 0}
	if record {
		res.History = []float64{0}
	}

	return res
}
