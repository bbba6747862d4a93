// Command triroute reads a road network with route requests, computes the
// distance, time and cost optimal routes plus a compromise for each request,
// and writes the results as text.
//
// Usage:
//
//	triroute [-config triroute.toml] [-in input.txt] [-out output.txt]
//	         [-engine interleaved|sequential] [-workers N] [-cache N]
//	         [-log-level debug|info|warn|error]
//
// Flags override values from the TOML file, which override built-in defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/triroute/config"
	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/dijkstra"
	"github.com/katalvlaran/triroute/logging"
	"github.com/katalvlaran/triroute/roadfile"
	"github.com/katalvlaran/triroute/solver"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "triroute: %v\n", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if err := solveFile(cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		return err
	}

	return nil
}

// loadConfig merges defaults, the optional TOML file and explicitly set flags.
func loadConfig(args []string, stderr io.Writer) (config.Config, error) {
	def := config.Default()

	fs := flag.NewFlagSet("triroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "path to a TOML configuration file")
	in := fs.String("in", def.Input, "input file")
	out := fs.String("out", def.Output, "output file")
	engine := fs.String("engine", def.Solver.Engine, "search engine: interleaved or sequential")
	workers := fs.Int("workers", def.Solver.Workers, "requests solved in parallel")
	cache := fs.Int("cache", def.Solver.CacheSize, "route cache entries (0 disables)")
	level := fs.String("log-level", def.Log.Level, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return loaded, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *in
		case "out":
			cfg.Output = *out
		case "engine":
			cfg.Solver.Engine = *engine
		case "workers":
			cfg.Solver.Workers = *workers
		case "cache":
			cfg.Solver.CacheSize = *cache
		case "log-level":
			cfg.Log.Level = *level
		}
	})

	return cfg, cfg.Validate()
}

// solveFile runs parse, solve and write for one configuration.
func solveFile(cfg config.Config, log *zap.Logger) error {
	start := time.Now()

	doc, err := roadfile.ParseFile(cfg.Input)
	if err != nil {
		return err
	}
	log.Info("input loaded",
		zap.String("file", cfg.Input),
		zap.String("cities", humanize.Comma(int64(doc.Graph.NodeCount()))),
		zap.String("roads", humanize.Comma(int64(doc.Graph.EdgeCount()))),
		zap.String("requests", humanize.Comma(int64(len(doc.Requests)))),
		zap.Int("components", doc.Graph.ComponentCount()),
	)

	finder, err := newFinder(cfg.Solver.Engine, doc.Graph, log)
	if err != nil {
		return err
	}
	s, err := solver.New(doc.Graph,
		solver.WithFinder(finder),
		solver.WithLogger(log),
		solver.WithWorkers(cfg.Solver.Workers),
		solver.WithCacheSize(cfg.Solver.CacheSize),
	)
	if err != nil {
		return err
	}

	results, err := s.SolveAll(doc.Requests)
	if err != nil {
		return err
	}
	if err := roadfile.WriteFile(cfg.Output, results); err != nil {
		return err
	}

	st := s.Stats()
	log.Info("results written",
		zap.String("file", cfg.Output),
		zap.String("solved", humanize.Comma(int64(st.Solved))),
		zap.Uint64("cache_hits", st.CacheHits),
		zap.Uint64("unreachable_shortcuts", st.ShortCuts),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// newFinder maps an engine name to its implementation.
func newFinder(engine string, g *core.Graph, log *zap.Logger) (dijkstra.Finder, error) {
	switch engine {
	case config.EngineSequential:
		return dijkstra.NewPathFinder(g, dijkstra.WithLogger(log))
	case config.EngineInterleaved:
		return dijkstra.NewMultiPathFinder(g, dijkstra.WithLogger(log))
	default:
		return nil, fmt.Errorf("%w: engine %q", config.ErrInvalid, engine)
	}
}
