package tsp_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/tsp"
)

func ExampleNearestNeighbor() {
	dist, _ := matrix.NewEuclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	res, err := tsp.NearestNeighbor(dist, tsp.DefaultNearestNeighborOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Tour, res.Length)
	// Output: [0 1 2 3] 4
}

func ExampleTwoOpt() {
	dist, _ := matrix.NewEuclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	opts := tsp.DefaultTwoOptOptions()
	opts.RecordHistory = true
	res, err := tsp.TwoOpt(dist, []int{0, 2, 1, 3}, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v %.3f moves=%d\n", res.Tour, res.Length, len(res.History)-1)
	// Output: [0 1 2 3] 4.000 moves=1
}

func ExampleConfigError() {
	dist, _ := matrix.NewDenseFrom([][]float64{{0, 1}, {2, 0}})

	_, err := tsp.NearestNeighbor(dist, tsp.DefaultNearestNeighborOptions())
	var ce *tsp.ConfigError
	fmt.Println(errors.As(err, &ce), ce.Field, errors.Is(err, tsp.ErrAsymmetric))
	// Output: true dist true
}
