package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tsplab/tsp"
	"github.com/stretchr/testify/require"
)

func TestSimulatedAnnealing_UnitSquare(t *testing.T) {
	t.Parallel()
	sq := unitSquare(t)

	res, err := tsp.SimulatedAnnealing(sq, []int{0, 2, 1, 3}, fastAnnealing(seedDet))
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Length, 1e-12)
	requireConsistent(t, sq, res, true)
	require.InDelta(t, 2+2*sqrt2, res.History[0], 1e-12)
}

func TestSimulatedAnnealing_HistoryRecordsImprovementsOnly(t *testing.T) {
	t.Parallel()
	d := randomDist(t, 30, 8)
	nn, err := tsp.NearestNeighbor(d, tsp.DefaultNearestNeighborOptions())
	require.NoError(t, err)

	res, err := tsp.SimulatedAnnealing(d, nn.Tour, fastAnnealing(seedDet))
	require.NoError(t, err)
	requireConsistent(t, d, res, true)
	require.InDelta(t, nn.Length, res.History[0], 1e-12)

	var i int
	for i = 1; i < len(res.History); i++ {
		require.Less(t, res.History[i], res.History[i-1])
	}
	require.LessOrEqual(t, res.Length, nn.Length)
}

func TestSimulatedAnnealing_Deterministic(t *testing.T) {
	t.Parallel()
	d := randomDist(t, 25, 1)

	a, err := tsp.SimulatedAnnealing(d, nil, fastAnnealing(42))
	require.NoError(t, err)
	b, err := tsp.SimulatedAnnealing(d, nil, fastAnnealing(42))
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Seed 0 selects the fixed default seed 1.
	z, err := tsp.SimulatedAnnealing(d, nil, fastAnnealing(0))
	require.NoError(t, err)
	one, err := tsp.SimulatedAnnealing(d, nil, fastAnnealing(1))
	require.NoError(t, err)
	require.Equal(t, one, z)
}

func TestSimulatedAnnealing_TwoCities(t *testing.T) {
	t.Parallel()
	d := mustDense(t, [][]float64{{0, 2.5}, {2.5, 0}})

	init := []int{1, 0}
	res, err := tsp.SimulatedAnnealing(d, init, fastAnnealing(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, res.Tour)
	require.Equal(t, 5.0, res.Length)
	require.Equal(t, []float64{5}, res.History)

	res.Tour[0] = 0
	require.Equal(t, []int{1, 0}, init)
}

func TestSimulatedAnnealing_NoHistoryByDefault(t *testing.T) {
	t.Parallel()
	d := randomDist(t, 12, 2)

	opts := fastAnnealing(3)
	opts.RecordHistory = false
	res, err := tsp.SimulatedAnnealing(d, nil, opts)
	require.NoError(t, err)
	require.Nil(t, res.History)
	requireConsistent(t, d, res, true)
}
