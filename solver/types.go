// Package solver defines the request/result contract between the route core
// and its callers, plus the options of the batch Solver.
package solver

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/dijkstra"
)

// ErrUnknownNode indicates a request naming a city that is not in the graph.
var ErrUnknownNode = errors.New("solver: unknown node")

// Request asks for the routes between two cities by name, with the priority
// used to pick the compromise.
type Request struct {
	From     string
	To       string
	Priority core.Priority
}

// Result is the answer to one Request: the optimal route per criterion and
// the compromise among them. Missing routes are core.NoRoute() values.
type Result struct {
	Request    Request
	Optimal    core.Routes
	Compromise core.Route
}

// Stats reports cache effectiveness since the Solver was created.
type Stats struct {
	Solved      uint64 // requests answered
	CacheHits   uint64 // answered from the route cache
	CacheMisses uint64 // computed by the finder (cache enabled only)
	ShortCuts   uint64 // answered as unreachable from component labels
}

// Options configures a Solver.
//
// Finder    – engine computing per-criterion routes (default: interleaved MultiPathFinder).
// Logger    – structured logger (default: no-op).
// Workers   – goroutines used by SolveAll (default 1: sequential).
// CacheSize – LRU entries keyed by (source, destination); 0 disables caching.
type Options struct {
	Finder    dijkstra.Finder
	Logger    *zap.Logger
	Workers   int
	CacheSize int
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithFinder selects the engine. Panics on nil.
func WithFinder(f dijkstra.Finder) Option {
	if f == nil {
		panic("solver: WithFinder(nil)")
	}

	return func(o *Options) {
		o.Finder = f
	}
}

// WithLogger routes solver logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithWorkers bounds the goroutines SolveAll may use. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("solver: WithWorkers(n<1)")
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithCacheSize enables an LRU cache of n (source, destination) entries.
// Panics if n < 0; 0 disables the cache.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic("solver: WithCacheSize(n<0)")
	}

	return func(o *Options) {
		o.CacheSize = n
	}
}

// DefaultOptions returns sequential, uncached Options with a no-op logger
// and no explicit Finder (New builds the interleaved engine).
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Workers:   1,
		CacheSize: 0,
	}
}
