package dijkstra

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/triroute/core"
)

// MultiPathFinder computes the three single-criterion optimal routes between
// one (source, destination) pair in a single logical pass.
//
// It keeps one fully independent search per criterion (own distances,
// predecessor arcs, settled flags and queue) in a fixed-size array indexed
// by criterion ordinal, and drives them from one scheduling loop: each round
// every still-active search settles exactly one node. A search stops being
// active once it settles the destination or empties its queue.
//
// No data crosses between searches, and each one executes the same step
// sequence it would execute alone, so every per-criterion result is
// identical to PathFinder.FindPath for that criterion.
type MultiPathFinder struct {
	g   *core.Graph
	log *zap.Logger
}

// NewMultiPathFinder returns a MultiPathFinder over g.
// Returns ErrNilGraph if g is nil.
func NewMultiPathFinder(g *core.Graph, opts ...Option) (*MultiPathFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := resolve(opts)

	return &MultiPathFinder{g: g, log: cfg.Logger}, nil
}

// FindAll returns the optimal route for every criterion.
//
// Behavior:
//   - from == to: three singleton routes, no loop.
//   - to unreachable: three core.NoRoute() values.
//   - unknown node: error wrapping core.ErrNodeNotFound.
//
// Complexity: three times the single-criterion bound, with one set of
// call setup and one loop.
func (f *MultiPathFinder) FindAll(from, to core.Node) (core.Routes, error) {
	src, dst, err := endpoints(f.g, from, to)
	if err != nil {
		return core.NoRoutes(), err
	}
	var out core.Routes
	if src == dst {
		one := singleton(f.g.NodeAt(src))
		for _, c := range core.Criteria {
			out[c] = one
		}
		return out, nil
	}

	// 1) Seed every state at the source.
	var states [core.NumCriteria]*search
	for _, c := range core.Criteria {
		states[c] = newSearch(f.g, c, src, dst)
	}

	// 2) Round-robin: one settled node per active state per round.
	rounds := 0
	for {
		progressed := false
		for _, s := range states {
			if !s.active() {
				continue
			}
			s.step()
			progressed = true
		}
		if !progressed {
			break
		}
		rounds++
	}

	// 3) Rebuild each route from its own state.
	for _, c := range core.Criteria {
		out[c] = states[c].route()
	}

	f.log.Debug("interleaved search",
		zap.Int("from", from.ID),
		zap.Int("to", to.ID),
		zap.Int("rounds", rounds),
		zap.Int("settled_distance", states[core.Distance].nSettled),
		zap.Int("settled_time", states[core.Time].nSettled),
		zap.Int("settled_cost", states[core.Cost].nSettled),
		zap.Bool("found", out[core.Distance].Exists()),
	)

	return out, nil
}

// FindPath returns the criterion-c entry of FindAll.
func (f *MultiPathFinder) FindPath(from, to core.Node, c core.Criterion) (core.Route, error) {
	all, err := f.FindAll(from, to)
	if err != nil {
		return core.NoRoute(), err
	}

	return all.Get(c), nil
}
