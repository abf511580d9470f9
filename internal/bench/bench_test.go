package bench_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tsplab/internal/bench"
	"github.com/katalvlaran/tsplab/internal/config"
	"github.com/katalvlaran/tsplab/tsp"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// smallConfig is the default configuration shrunk to run in milliseconds.
func smallConfig(t testing.TB) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.Cities = 12
	cfg.Seeds = []int64{1, 2}
	cfg.Annealing.EndTemp = 1e-2
	cfg.Annealing.Alpha = 0.9
	cfg.Annealing.ItersPerTemp = 20
	cfg.Genetic.PopSize = 20
	cfg.Genetic.Generations = 10
	cfg.Genetic.EliteSize = 2
	cfg.AntColony.Ants = 5
	cfg.AntColony.Iterations = 5
	require.NoError(t, cfg.Validate())

	return cfg
}

type RunnerSuite struct {
	suite.Suite
	cfg *config.Config
	rep *bench.Report
}

func (s *RunnerSuite) SetupSuite() {
	s.cfg = smallConfig(s.T())
	rep, err := bench.NewRunner(s.cfg, quietLogger()).Run(context.Background())
	s.Require().NoError(err)
	s.rep = rep
}

func (s *RunnerSuite) TestLayout() {
	s.Require().Equal(12, s.rep.Cities)
	s.Require().Len(s.rep.Baseline, 2)
	s.Require().Equal(bench.NearestNeighbor, s.rep.Baseline[0].Algorithm)
	s.Require().Equal(bench.TwoOpt, s.rep.Baseline[1].Algorithm)

	s.Require().Len(s.rep.Runs, 6)
	want := []string{bench.Annealing, bench.Genetic, bench.AntColony}
	for i, rec := range s.rep.Runs {
		s.Require().Equal(want[i%3], rec.Algorithm)
		s.Require().Equal(s.cfg.Seeds[i/3], rec.Seed)
		s.Require().NoError(tsp.ValidatePermutation(rec.Tour, 12))
		s.Require().NotEmpty(rec.History)
	}
	s.Require().Equal(s.rep.Runs[3:], s.rep.LastSeed())
}

func (s *RunnerSuite) TestPipelineNeverWorsens() {
	nn, two := s.rep.Baseline[0], s.rep.Baseline[1]
	s.Require().LessOrEqual(two.Length, nn.Length)
	s.Require().Positive(s.rep.LowerBound)
	s.Require().LessOrEqual(s.rep.LowerBound, two.Length)

	var i int
	for i = 0; i < len(s.rep.Runs); i += 3 {
		sa, ga := s.rep.Runs[i], s.rep.Runs[i+1]
		s.Require().LessOrEqual(sa.Length, two.Length)
		s.Require().LessOrEqual(ga.Length, sa.Length)
	}
}

func (s *RunnerSuite) TestParallelSeedsMatchSerial() {
	cfg := *s.cfg
	cfg.Parallel = 2
	rep, err := bench.NewRunner(&cfg, quietLogger()).Run(context.Background())
	s.Require().NoError(err)

	s.Require().Len(rep.Runs, len(s.rep.Runs))
	for i := range rep.Runs {
		s.Require().Equal(s.rep.Runs[i].Algorithm, rep.Runs[i].Algorithm)
		s.Require().Equal(s.rep.Runs[i].Tour, rep.Runs[i].Tour)
		s.Require().Equal(s.rep.Runs[i].Length, rep.Runs[i].Length)
	}
}

func (s *RunnerSuite) TestSummarise() {
	stats := s.rep.Summarise()
	s.Require().Len(stats, 3)
	for _, st := range stats {
		s.Require().Equal(2, st.Runs)
		s.Require().LessOrEqual(st.MinLength, st.MeanLength)
		s.Require().GreaterOrEqual(st.StdLength, 0.0)
	}
}

func (s *RunnerSuite) TestSave() {
	dir := s.T().TempDir()
	results := filepath.Join(dir, "out", "results.txt")
	history := filepath.Join(dir, "out", "convergence.csv")
	s.Require().NoError(bench.Save(s.rep, results, history))

	f, err := os.Open(results)
	s.Require().NoError(err)
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	s.Require().Len(lines, 7)
	s.Require().Equal(bench.ResultsHeader, lines[0])
	s.Require().True(strings.HasPrefix(lines[1], "SA, 1, "), lines[1])
	s.Require().Len(strings.Split(lines[6], ", "), 4)

	h, err := os.Open(history)
	s.Require().NoError(err)
	defer h.Close()
	rows, err := csv.NewReader(h).ReadAll()
	s.Require().NoError(err)
	s.Require().Equal([]string{"algorithm", "seed", "step", "length"}, rows[0])

	total := 0
	for _, rec := range append(append([]bench.Record(nil), s.rep.Baseline...), s.rep.Runs...) {
		total += len(rec.History)
	}
	s.Require().Len(rows, total+1)
}

func (s *RunnerSuite) TestWriteSummary() {
	var buf bytes.Buffer
	s.Require().NoError(bench.WriteSummary(&buf, s.rep))
	out := buf.String()
	for _, name := range []string{"Nearest Neighbor", "2-opt", "Simulated Annealing", "Genetic Algorithm", "Ant Colony", "Across seeds", "MST lower bound", "gap=", "system:"} {
		s.Require().Contains(out, name)
	}
}

func (s *RunnerSuite) TestWriteSummary_WriterError() {
	s.Require().ErrorIs(bench.WriteSummary(failingWriter{}, s.rep), errWrite)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bench.NewRunner(smallConfig(t), quietLogger()).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSave_WithoutHistory(t *testing.T) {
	rep := &bench.Report{Runs: []bench.Record{{Algorithm: bench.Genetic, Seed: 3, Length: 1.5}}}
	dir := t.TempDir()
	results := filepath.Join(dir, "results.txt")
	require.NoError(t, bench.Save(rep, results, ""))

	data, err := os.ReadFile(results)
	require.NoError(t, err)
	require.Equal(t, bench.ResultsHeader+"\nGA, 3, 1.500000, 0.000000\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestGap(t *testing.T) {
	require.InDelta(t, 25.0, bench.Gap(5, 4), 1e-12)
	require.Zero(t, bench.Gap(5, 0))
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]string{
		"nn": bench.NearestNeighbor, "2opt": bench.TwoOpt, "sa": bench.Annealing,
		"ga": bench.Genetic, "aco": bench.AntColony,
	} {
		got, err := bench.ParseAlgorithm(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := bench.ParseAlgorithm("lkh")
	require.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestSolve(t *testing.T) {
	r := bench.NewRunner(smallConfig(t), quietLogger())
	for _, algo := range []string{bench.NearestNeighbor, bench.TwoOpt, bench.Annealing, bench.Genetic, bench.AntColony} {
		rec, err := r.Solve(algo, 4)
		require.NoError(t, err, algo)
		require.Equal(t, algo, rec.Algorithm)
		require.NoError(t, tsp.ValidatePermutation(rec.Tour, 12))
		require.Positive(t, rec.Length)
	}

	_, err := r.Solve("XX", 1)
	require.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestCollectSysInfo(t *testing.T) {
	info := bench.CollectSysInfo()
	require.Positive(t, info.Cores)
	require.NotEmpty(t, info.Platform)
	require.NotEmpty(t, info.String())
}

var errWrite = errors.New("write failed")

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }
