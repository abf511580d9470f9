package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ResultsHeader is the first line of the results file.
const ResultsHeader = "Algorithm, Seed, TourLength, TimeSeconds"

// Stats summarises one algorithm over all seeds.
type Stats struct {
	Algorithm   string
	Runs        int
	MeanLength  float64
	StdLength   float64 // 0 for a single run
	MinLength   float64
	MeanSeconds float64
}

// Summarise computes per-algorithm statistics of r.Runs in SA, GA, ACO order.
func (r *Report) Summarise() []Stats {
	var out []Stats
	for _, algo := range []string{Annealing, Genetic, AntColony} {
		var lengths, secs []float64
		for _, rec := range r.Runs {
			if rec.Algorithm != algo {
				continue
			}
			lengths = append(lengths, rec.Length)
			secs = append(secs, rec.Elapsed.Seconds())
		}
		if len(lengths) == 0 {
			continue
		}

		st := Stats{
			Algorithm:   algo,
			Runs:        len(lengths),
			MeanLength:  stat.Mean(lengths, nil),
			MinLength:   floats.Min(lengths),
			MeanSeconds: stat.Mean(secs, nil),
		}
		if len(lengths) > 1 {
			st.StdLength = stat.StdDev(lengths, nil)
		}
		out = append(out, st)
	}

	return out
}

// WriteResults writes the per-seed runs in the results file format.
func WriteResults(w io.Writer, runs []Record) error {
	if _, err := fmt.Fprintln(w, ResultsHeader); err != nil {
		return err
	}
	for _, rec := range runs {
		if _, err := fmt.Fprintf(w, "%s, %d, %.6f, %.6f\n",
			rec.Algorithm, rec.Seed, rec.Length, rec.Elapsed.Seconds()); err != nil {
			return err
		}
	}

	return nil
}

// WriteHistory writes every recorded convergence history as long-format CSV
// (algorithm, seed, step, length), ready for an external plotter.
func WriteHistory(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"algorithm", "seed", "step", "length"}); err != nil {
		return err
	}
	for _, rec := range recs {
		for step, l := range rec.History {
			row := []string{
				rec.Algorithm,
				strconv.FormatInt(rec.Seed, 10),
				strconv.Itoa(step),
				strconv.FormatFloat(l, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary prints the last-seed quality table and the cross-seed
// statistics.
func WriteSummary(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "=== Time & Quality Summary (last seed) ===\n"); err != nil {
		return err
	}
	rows := append(append([]Record(nil), r.Baseline...), r.LastSeed()...)
	for _, rec := range rows {
		if _, err := fmt.Fprintf(w, "%-22s  length=%8.4f  gap=%6.2f%%  time=%9.6f s\n",
			DisplayName(rec.Algorithm), rec.Length, Gap(rec.Length, r.LowerBound), rec.Elapsed.Seconds()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%-22s  length=%8.4f\n", "MST lower bound", r.LowerBound); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n=== Across seeds ===\n"); err != nil {
		return err
	}
	for _, st := range r.Summarise() {
		if _, err := fmt.Fprintf(w, "%-22s  runs=%d  mean=%8.4f  std=%7.4f  min=%8.4f  time=%9.6f s\n",
			DisplayName(st.Algorithm), st.Runs, st.MeanLength, st.StdLength, st.MinLength, st.MeanSeconds); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nsystem: %s\n", r.System)

	return err
}

// Save writes the results file and, when historyPath is not empty, the
// convergence CSV of the baseline and every run. Parent directories are
// created as needed.
func Save(r *Report, resultsPath, historyPath string) error {
	if err := writeFile(resultsPath, func(w io.Writer) error {
		return WriteResults(w, r.Runs)
	}); err != nil {
		return err
	}
	if historyPath == "" {
		return nil
	}
	all := append(append([]Record(nil), r.Baseline...), r.Runs...)

	return writeFile(historyPath, func(w io.Writer) error {
		return WriteHistory(w, all)
	})
}

func writeFile(path string, fill func(io.Writer) error) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err = fill(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Gap is the distance of length above the lower bound lb, in percent of lb.
// A zero bound yields 0.
func Gap(length, lb float64) float64 {
	if lb <= 0 {
		return 0
	}

	return 100 * (length - lb) / lb
}
