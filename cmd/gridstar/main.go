// Command gridstar runs the sequential and/or parallel A* solver over a
// generated or fixed map and reports the result, following spec.md §6's
// exit-status contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/wrenfield/gridstar/internal/config"
	"github.com/wrenfield/gridstar/internal/driver"
	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/mapsource"
	"github.com/wrenfield/gridstar/internal/mapsource/fixed"
	"github.com/wrenfield/gridstar/internal/mapsource/random"
	"github.com/wrenfield/gridstar/internal/patherrors"
	"github.com/wrenfield/gridstar/internal/present"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (optional)")
		width      = flag.Int("width", 0, "grid width, overrides config")
		height     = flag.Int("height", 0, "grid height, overrides config")
		input      = flag.String("input-module", "", "random or fixed, overrides config")
		fixedMap   = flag.String("fixed-map", "", "path to a fixed map YAML fixture, overrides config")
		batchWidth = flag.Int("batch-width", 0, "parallel solver batch width K, overrides config")
		seed       = flag.Int64("seed", 0, "seed for the random map source")
		solvers    = flag.String("solvers", "", "sequential, parallel or both, overrides config")
		structured = flag.Bool("yaml", false, "print the result as YAML instead of text")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", "err", err)
			return 1
		}
		cfg = loaded
	}
	applyOverrides(&cfg, *width, *height, *input, *fixedMap, *batchWidth, *solvers, *seed)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		return 1
	}
	slog.SetLogLoggerLevel(parseLevel(cfg.LogLevel))

	src, err := buildSource(cfg, *seed)
	if err != nil {
		slog.Error("building map source", "err", err)
		return 1
	}

	g, start, target, err := mapsource.Build(src)
	if err != nil {
		slog.Error("building grid", "err", err)
		return 1
	}

	out, err := driver.Run(context.Background(), cfg, g, start, target)
	if err != nil {
		if patherrors.Fatal(err) {
			slog.Error("fatal", "err", err)
			return 1
		}
		slog.Error("query aborted", "err", err)
		return 1
	}

	printResult(g, out, *structured)
	return 0
}

func applyOverrides(cfg *config.Config, width, height int, input, fixedMap string, batchWidth int, solvers string, seed int64) {
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if input != "" {
		cfg.InputModule = input
	}
	if fixedMap != "" {
		cfg.FixedMap = fixedMap
	}
	if batchWidth > 0 {
		cfg.BatchWidth = batchWidth
	}
	if solvers != "" {
		cfg.Solvers = solvers
	}
	if seed != 0 {
		cfg.Seed = &seed
	}
}

func buildSource(cfg config.Config, flagSeed int64) (mapsource.Source, error) {
	switch cfg.InputModule {
	case "fixed":
		return fixed.Load(cfg.FixedMap)
	case "random":
		seed := flagSeed
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		return random.New(cfg.Width, cfg.Height, uint64(seed), 0.7), nil
	default:
		return nil, fmt.Errorf("%w: unknown input-module %q", patherrors.ErrConfiguration, cfg.InputModule)
	}
}

func printResult(g *grid.Grid, out driver.Outcome, structured bool) {
	res := out.Sequential
	if res == nil {
		res = out.Parallel
	}
	if structured {
		present.Structured(os.Stdout, g, *res)
		return
	}
	present.Text(os.Stdout, g, *res)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
