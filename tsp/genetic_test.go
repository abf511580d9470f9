package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tsplab/tsp"
	"github.com/stretchr/testify/require"
)

func TestGenetic_HistoryCadence(t *testing.T) {
	t.Parallel()
	d := randomDist(t, 20, 6)

	opts := fastGenetic(seedDet)
	res, err := tsp.Genetic(d, nil, opts)
	require.NoError(t, err)
	require.Len(t, res.History, opts.Generations+1)
	requireConsistent(t, d, res, true)

	opts.Generations = 0
	res, err = tsp.Genetic(d, nil, opts)
	require.NoError(t, err)
	require.Len(t, res.History, 1)
	requireConsistent(t, d, res, true)
}

func TestGenetic_SeededNeverWorse(t *testing.T) {
	t.Parallel()
	d := randomDist(t, 30, 2)

	two, err := tsp.TwoOpt(d, nil, tsp.DefaultTwoOptOptions())
	require.NoError(t, err)

	res, err := tsp.Genetic(d, two.Tour, fastGenetic(seedDet))
	require.NoError(t, err)
	require.LessOrEqual(t, res.Length, two.Length)
	require.LessOrEqual(t, res.History[0], two.Length)
}

func TestGenetic_WorkersDoNotChangeResult(t *testing.T) {
	t.Parallel()
	d := randomDist(t, 25, 3)

	serial := fastGenetic(99)
	serial.Workers = 1
	parallel := serial
	parallel.Workers = 4

	a, err := tsp.Genetic(d, nil, serial)
	require.NoError(t, err)
	b, err := tsp.Genetic(d, nil, parallel)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenetic_UnitSquare(t *testing.T) {
	t.Parallel()
	sq := unitSquare(t)

	res, err := tsp.Genetic(sq, nil, fastGenetic(seedDet))
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Length, 1e-12)
}

func TestOrderCrossover_Fixed(t *testing.T) {
	t.Parallel()

	p1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p2 := []int{7, 6, 5, 4, 3, 2, 1, 0}
	child, err := tsp.OrderCrossover(p1, p2, 2, 4)
	require.NoError(t, err)
	require.Equal(t, []int{7, 6, 2, 3, 4, 5, 1, 0}, child)
}

// TestOrderCrossover_Exhaustive checks every cut pair for n=5..8 on random
// parents: the child is a permutation, keeps p1's slice in place and fills
// the rest with p2's order.
func TestOrderCrossover_Exhaustive(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))

	var n, a, b, trial, i int
	for n = 5; n <= 8; n++ {
		for trial = 0; trial < 5; trial++ {
			p1 := rng.Perm(n)
			p2 := rng.Perm(n)
			for a = 0; a < n-1; a++ {
				for b = a + 1; b < n; b++ {
					child, err := tsp.OrderCrossover(p1, p2, a, b)
					require.NoError(t, err)
					requirePermutation(t, child, n)
					require.Equal(t, p1[a:b+1], child[a:b+1])

					inSlice := make(map[int]bool, b-a+1)
					for i = a; i <= b; i++ {
						inSlice[p1[i]] = true
					}
					var want, got []int
					for _, c := range p2 {
						if !inSlice[c] {
							want = append(want, c)
						}
					}
					for i = 0; i < n; i++ {
						if i < a || i > b {
							got = append(got, child[i])
						}
					}
					require.Equal(t, want, got, "n=%d cuts=(%d,%d)", n, a, b)
				}
			}
		}
	}
}

func TestOrderCrossover_Errors(t *testing.T) {
	t.Parallel()
	p := []int{0, 1, 2, 3}

	_, err := tsp.OrderCrossover(p, []int{0, 1, 1, 3}, 0, 2)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.OrderCrossover(p, []int{0, 1, 2}, 0, 2)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.OrderCrossover(p, p, 2, 2)
	require.ErrorIs(t, err, tsp.ErrInvalidParameter)
	_, err = tsp.OrderCrossover(p, p, 1, 4)
	require.ErrorIs(t, err, tsp.ErrInvalidParameter)
}
