package solver

import (
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/triroute/compromise"
	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/dijkstra"
)

// pairKey identifies a cached (source, destination) query by node ids.
type pairKey struct {
	from, to int
}

// Solver answers route requests over one immutable graph.
// It is safe for concurrent use.
type Solver struct {
	g       *core.Graph
	finder  dijkstra.Finder
	log     *zap.Logger
	workers int
	cache   *lru.Cache[pairKey, core.Routes] // nil when disabled

	solved, hits, misses, shortcuts atomic.Uint64
}

// New returns a Solver over g.
// Returns dijkstra.ErrNilGraph if g is nil.
func New(g *core.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Solver{g: g, finder: cfg.Finder, log: cfg.Logger, workers: cfg.Workers}
	if s.finder == nil {
		f, err := dijkstra.NewMultiPathFinder(g, dijkstra.WithLogger(cfg.Logger))
		if err != nil {
			return nil, err
		}
		s.finder = f
	}
	if cfg.CacheSize > 0 {
		c, err := lru.New[pairKey, core.Routes](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("solver: route cache: %w", err)
		}
		s.cache = c
	}

	return s, nil
}

// Solve answers a single request.
//
// Steps:
//  1. Resolve both names (ErrUnknownNode otherwise).
//  2. Look up the cache, if enabled.
//  3. If the endpoints lie in different components, every route is the
//     sentinel and the finder is skipped.
//  4. Otherwise ask the finder for all three optimal routes.
//  5. Select the compromise under the request priority.
func (s *Solver) Solve(req Request) (Result, error) {
	res := Result{Request: req, Optimal: core.NoRoutes(), Compromise: core.NoRoute()}

	from, ok := s.g.NodeByName(req.From)
	if !ok {
		return res, fmt.Errorf("%w: %q", ErrUnknownNode, req.From)
	}
	to, ok := s.g.NodeByName(req.To)
	if !ok {
		return res, fmt.Errorf("%w: %q", ErrUnknownNode, req.To)
	}

	routes, err := s.routes(from, to)
	if err != nil {
		return res, err
	}
	best, err := compromise.Select(routes, req.Priority)
	if err != nil {
		return res, fmt.Errorf("solver: %s -> %s: %w", req.From, req.To, err)
	}
	s.solved.Add(1)

	res.Optimal = routes
	res.Compromise = best
	s.log.Debug("request solved",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Stringer("priority", req.Priority),
		zap.Bool("found", best.Exists()),
	)

	return res, nil
}

// routes returns the per-criterion optimal routes, going through the cache
// and the component shortcut.
func (s *Solver) routes(from, to core.Node) (core.Routes, error) {
	key := pairKey{from: from.ID, to: to.ID}
	if s.cache != nil {
		if rs, ok := s.cache.Get(key); ok {
			s.hits.Add(1)
			return rs, nil
		}
		s.misses.Add(1)
	}

	var rs core.Routes
	if !s.g.Connected(from, to) {
		s.shortcuts.Add(1)
		rs = core.NoRoutes()
	} else {
		var err error
		if rs, err = s.finder.FindAll(from, to); err != nil {
			return core.NoRoutes(), err
		}
	}

	if s.cache != nil {
		s.cache.Add(key, rs)
	}

	return rs, nil
}

// SolveAll answers reqs and returns results in request order.
//
// With more than one worker the requests run on a bounded errgroup; the graph
// is read-only and each search owns its state, so results are identical to a
// sequential run. The first error stops the batch and is returned.
func (s *Solver) SolveAll(reqs []Request) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(reqs))

	if s.workers <= 1 {
		for i, req := range reqs {
			r, err := s.Solve(req)
			if err != nil {
				return nil, fmt.Errorf("request %d: %w", i+1, err)
			}
			results[i] = r
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(s.workers)
		for i := range reqs {
			i := i
			eg.Go(func() error {
				r, err := s.Solve(reqs[i])
				if err != nil {
					return fmt.Errorf("request %d: %w", i+1, err)
				}
				results[i] = r
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	s.log.Info("batch solved",
		zap.Int("requests", len(reqs)),
		zap.Int("workers", s.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results, nil
}

// Stats returns a snapshot of the solver counters.
func (s *Solver) Stats() Stats {
	return Stats{
		Solved:      s.solved.Load(),
		CacheHits:   s.hits.Load(),
		CacheMisses: s.misses.Load(),
		ShortCuts:   s.shortcuts.Load(),
	}
}
