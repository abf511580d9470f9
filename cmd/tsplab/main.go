// Command tsplab runs the TSP heuristics benchmark or a single strategy on a
// generated instance. Settings come from TSPLAB_* environment variables;
// flags override them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/urfave/cli"

	"github.com/katalvlaran/tsplab/internal/bench"
	"github.com/katalvlaran/tsplab/internal/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("tsplab failed", "err", err)
		os.Exit(1)
	}
}

var instanceFlags = []cli.Flag{
	cli.IntFlag{Name: "cities", Usage: "number of random cities (TSPLAB_CITIES)"},
	cli.Int64Flag{Name: "instance-seed", Usage: "seed of the instance generator (TSPLAB_INSTANCE_SEED)"},
	cli.BoolFlag{Name: "open", Usage: "measure open paths instead of closed tours (TSPLAB_OPEN)"},
	cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (TSPLAB_LOG_LEVEL)"},
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tsplab"
	app.Usage = "heuristic TSP solvers and their benchmark"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "baseline NN and 2-opt, then SA, GA and ACO for every seed",
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "seeds", Usage: "comma-separated algorithm seeds (TSPLAB_SEEDS)"},
				cli.IntFlag{Name: "parallel", Usage: "seeds run concurrently (TSPLAB_PARALLEL)"},
				cli.StringFlag{Name: "out-dir", Usage: "output directory (TSPLAB_OUTPUT_DIR)"},
				cli.BoolFlag{Name: "no-history", Usage: "skip the convergence CSV"},
			}, instanceFlags...),
			Action: runBenchmark,
		},
		{
			Name:  "solve",
			Usage: "run one strategy on the generated instance",
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "algo", Value: "2opt", Usage: "nn, 2opt, sa, ga or aco"},
				cli.Int64Flag{Name: "seed", Value: 1, Usage: "algorithm seed"},
			}, instanceFlags...),
			Action: solveOne,
		},
	}

	return app
}

func runBenchmark(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := bench.NewRunner(cfg, slog.Default()).Run(ctx)
	if err != nil {
		return err
	}
	if err = bench.WriteSummary(os.Stdout, rep); err != nil {
		return err
	}

	if err = bench.Save(rep, cfg.ResultsPath(), cfg.HistoryPath()); err != nil {
		return err
	}
	slog.Info("results saved", "results", cfg.ResultsPath(), "history", cfg.HistoryPath())

	return nil
}

func solveOne(c *cli.Context) error {
	algo, err := bench.ParseAlgorithm(c.String("algo"))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	rec, err := bench.NewRunner(cfg, slog.Default()).Solve(algo, c.Int64("seed"))
	if err != nil {
		return err
	}
	fmt.Printf("%s seed=%d length=%.6f time=%.6fs history=%d\n",
		bench.DisplayName(rec.Algorithm), rec.Seed, rec.Length, rec.Elapsed.Seconds(), len(rec.History))
	fmt.Printf("tour=%v\n", rec.Tour)

	return nil
}

// loadConfig reads the environment, applies the flags that were set and
// installs the default logger.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err = applyFlags(c, cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	setupLogger(cfg.LogLevel)

	return cfg, nil
}

func applyFlags(c *cli.Context, cfg *config.Config) error {
	if c.IsSet("cities") {
		cfg.Cities = c.Int("cities")
	}
	if c.IsSet("instance-seed") {
		cfg.InstanceSeed = c.Int64("instance-seed")
	}
	if c.IsSet("open") {
		cfg.Open = c.Bool("open")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("seeds") {
		seeds, err := parseSeeds(c.String("seeds"))
		if err != nil {
			return err
		}
		cfg.Seeds = seeds
	}
	if c.IsSet("parallel") {
		cfg.Parallel = c.Int("parallel")
	}
	if c.IsSet("out-dir") {
		cfg.Output.Dir = c.String("out-dir")
	}
	if c.Bool("no-history") {
		cfg.Output.History = ""
	}

	return nil
}

func parseSeeds(s string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seeds: %w", err)
		}
		out = append(out, v)
	}

	return out, nil
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
