// Package dijkstra defines the engine options, sentinel errors and the Finder
// contract shared by the single-criterion and the interleaved engines.
//
// Options:
//
//	– WithLogger: *zap.Logger receiving one Debug entry per search (default: no-op).
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– core.ErrNodeNotFound (wrapped) if a query node is not in the graph.
package dijkstra

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/triroute/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to a constructor.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Finder computes optimal routes between two nodes of one graph.
// Both PathFinder and MultiPathFinder satisfy it.
type Finder interface {
	// FindPath returns the route optimal under a single criterion,
	// or core.NoRoute() if the destination is unreachable.
	FindPath(from, to core.Node, c core.Criterion) (core.Route, error)

	// FindAll returns the optimal route for every criterion.
	FindAll(from, to core.Node) (core.Routes, error)
}

// Options configures an engine.
type Options struct {
	Logger *zap.Logger // receives per-search Debug entries
}

// Option represents a functional option for configuring an engine.
type Option func(*Options)

// WithLogger routes per-search diagnostics to l.
// Panics on nil; pass zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
