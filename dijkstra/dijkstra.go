// Package dijkstra implements the single-criterion shortest-path engine.
//
// PathFinder runs classic Dijkstra with a container/heap min-queue keyed by
// the tentative cost under one criterion's weight field, stopping as soon as
// the destination is settled.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved nodes are pushed again; stale entries are
//     skipped when popped because the node is already settled.
//   - Per-call state lives in flat slices indexed by the graph's dense node
//     index; nothing is cached between calls.
//   - Reconstruction sums all three raw weights along the recorded arcs, so a
//     route always reports distance, time and cost whichever one it optimized.
//   - Costs and totals saturate at math.MaxInt64 (core.SaturatingAdd); a
//     reached flag, not the MaxInt64 initial distance, marks reachability.
package dijkstra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/triroute/core"
)

// PathFinder is the single-criterion engine. It holds a non-owning reference
// to the graph and never mutates it; one PathFinder may serve concurrent calls.
type PathFinder struct {
	g   *core.Graph
	log *zap.Logger
}

// NewPathFinder returns a PathFinder over g.
// Returns ErrNilGraph if g is nil.
func NewPathFinder(g *core.Graph, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := resolve(opts)

	return &PathFinder{g: g, log: cfg.Logger}, nil
}

// FindPath returns the route from → to that minimizes criterion c.
//
// Behavior:
//   - from == to: singleton route with zero totals, no queue loop.
//   - to unreachable: core.NoRoute().
//   - unknown node: error wrapping core.ErrNodeNotFound.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (flat state plus lazy heap).
func (f *PathFinder) FindPath(from, to core.Node, c core.Criterion) (core.Route, error) {
	src, dst, err := endpoints(f.g, from, to)
	if err != nil {
		return core.NoRoute(), err
	}
	if src == dst {
		return singleton(f.g.NodeAt(src)), nil
	}

	s := newSearch(f.g, c, src, dst)
	for s.active() {
		s.step()
	}
	r := s.route()

	f.log.Debug("single-criterion search",
		zap.Stringer("criterion", c),
		zap.Int("from", from.ID),
		zap.Int("to", to.ID),
		zap.Int("settled", s.nSettled),
		zap.Bool("found", r.Exists()),
	)

	return r, nil
}

// FindAll runs FindPath once per criterion, in the fixed order Distance,
// Time, Cost. It is the reference the interleaved engine is checked against.
func (f *PathFinder) FindAll(from, to core.Node) (core.Routes, error) {
	var out core.Routes
	for _, c := range core.Criteria {
		r, err := f.FindPath(from, to, c)
		if err != nil {
			return core.NoRoutes(), err
		}
		out[c] = r
	}

	return out, nil
}

// endpoints resolves both nodes to dense indices.
func endpoints(g *core.Graph, from, to core.Node) (int, int, error) {
	src, ok := g.IndexOf(from)
	if !ok {
		return 0, 0, fmt.Errorf("dijkstra: source %d (%s): %w", from.ID, from.Name, core.ErrNodeNotFound)
	}
	dst, ok := g.IndexOf(to)
	if !ok {
		return 0, 0, fmt.Errorf("dijkstra: destination %d (%s): %w", to.ID, to.Name, core.ErrNodeNotFound)
	}

	return src, dst, nil
}
