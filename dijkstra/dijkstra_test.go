// Package dijkstra_test contains unit tests for both engines: validation,
// identity and unreachable cases, undirected symmetry, concrete scenarios and
// reconstruction consistency.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/triroute/compromise"
	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/dijkstra"
)

// engines returns both Finder implementations over g.
func engines(t *testing.T, g *core.Graph) map[string]dijkstra.Finder {
	t.Helper()
	single, err := dijkstra.NewPathFinder(g)
	require.NoError(t, err)
	multi, err := dijkstra.NewMultiPathFinder(g)
	require.NoError(t, err)

	return map[string]dijkstra.Finder{"single": single, "multi": multi}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewFinders_NilGraph(t *testing.T) {
	_, err := dijkstra.NewPathFinder(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.NewMultiPathFinder(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithLogger(nil) })
}

func TestFinders_UnknownNode(t *testing.T) {
	g := conflictGraph(t)
	ghost := core.Node{ID: 404, Name: "ghost"}
	a := node(t, g, "A")

	for name, f := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			_, err := f.FindPath(ghost, a, core.Distance)
			require.ErrorIs(t, err, core.ErrNodeNotFound)
			_, err = f.FindPath(a, ghost, core.Time)
			require.ErrorIs(t, err, core.ErrNodeNotFound)

			rs, err := f.FindAll(a, ghost)
			require.ErrorIs(t, err, core.ErrNodeNotFound)
			for _, c := range core.Criteria {
				assert.False(t, rs[c].Exists())
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Edge cases
// ------------------------------------------------------------------------

func TestFinders_IdentityRoute(t *testing.T) {
	g := conflictGraph(t)
	for name, f := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			for _, n := range g.Nodes() {
				for _, c := range core.Criteria {
					r, err := f.FindPath(n, n, c)
					require.NoError(t, err)
					require.True(t, r.Exists())
					assert.Equal(t, []core.Node{n}, r.Nodes())
					assert.Equal(t, core.Weights{}, r.Totals())
				}
			}
		})
	}
}

func TestFinders_IsolatedSingleNode(t *testing.T) {
	g := buildNamed(t, []string{"Solo"}, nil)
	solo := node(t, g, "Solo")
	for name, f := range engines(t, g) {
		rs, err := f.FindAll(solo, solo)
		require.NoError(t, err, name)
		for _, c := range core.Criteria {
			assert.Equal(t, 1, rs[c].Len(), name)
		}
	}
}

func TestFinders_Unreachable(t *testing.T) {
	g := buildNamed(t, []string{"A", "B", "C", "D"}, []road{
		{"A", "B", w(1, 1, 1)},
		{"C", "D", w(1, 1, 1)},
	})
	a, d := node(t, g, "A"), node(t, g, "D")

	for name, f := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			rs, err := f.FindAll(a, d)
			require.NoError(t, err, "unreachable is not an error")
			for _, c := range core.Criteria {
				assert.False(t, rs.Get(c).Exists(), "criterion %s", c)
			}
			best, err := compromise.Select(rs, core.DefaultPriority)
			require.NoError(t, err)
			assert.False(t, best.Exists())
		})
	}
}

func TestFinders_UndirectedSymmetry(t *testing.T) {
	g := buildNamed(t, []string{"U", "V"}, []road{{"U", "V", w(7, 11, 13)}})
	u, v := node(t, g, "U"), node(t, g, "V")

	back := g.EdgesFrom(v)
	require.Len(t, back, 1)
	assert.Equal(t, u, back[0].To)
	assert.Equal(t, w(7, 11, 13), back[0].Weights)

	for name, f := range engines(t, g) {
		rs, err := f.FindAll(v, u)
		require.NoError(t, err)
		for _, c := range core.Criteria {
			assert.Equal(t, []string{"V", "U"}, names(rs[c]), name)
			assert.Equal(t, w(7, 11, 13), rs[c].Totals(), name)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Concrete scenarios
// ------------------------------------------------------------------------

func TestFinders_TrianglePrefersDirectEdge(t *testing.T) {
	g := buildNamed(t, []string{"A", "B", "C"}, []road{
		{"A", "B", w(100, 60, 200)},
		{"B", "C", w(100, 60, 200)},
		{"C", "A", w(100, 60, 200)},
	})
	a, c := node(t, g, "A"), node(t, g, "C")

	for name, f := range engines(t, g) {
		r, err := f.FindPath(a, c, core.Distance)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, names(r), name)
		assert.EqualValues(t, 100, r.Value(core.Distance), name)
	}
}

func TestFinders_ConflictScenario(t *testing.T) {
	g := conflictGraph(t)
	a, b := node(t, g, "A"), node(t, g, "B")

	for name, f := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			rs, err := f.FindAll(a, b)
			require.NoError(t, err)

			dist := rs.Get(core.Distance)
			assert.Equal(t, []string{"A", "B"}, names(dist))
			assert.Equal(t, w(100, 60, 500), dist.Totals())

			cost := rs.Get(core.Cost)
			assert.Equal(t, []string{"A", "C", "B"}, names(cost))
			assert.Equal(t, w(300, 60, 200), cost.Totals())

			// Direct road and detour tie at 60 minutes; strict improvement keeps
			// the road relaxed first, which is the direct one.
			tm := rs.Get(core.Time)
			assert.Equal(t, []string{"A", "B"}, names(tm))
			assert.EqualValues(t, 60, tm.Value(core.Time))

			best, err := compromise.Select(rs, core.Priority{core.Distance, core.Time, core.Cost})
			require.NoError(t, err)
			assert.True(t, best.Equal(dist))

			best, err = compromise.Select(rs, core.Priority{core.Cost, core.Time, core.Distance})
			require.NoError(t, err)
			assert.True(t, best.Equal(cost))
		})
	}
}

func TestFinders_ParallelRoadsPickCheapestPerCriterion(t *testing.T) {
	g := buildNamed(t, []string{"A", "B"}, []road{
		{"A", "B", w(10, 90, 90)},
		{"A", "B", w(90, 10, 90)},
		{"A", "B", w(90, 90, 10)},
	})
	a, b := node(t, g, "A"), node(t, g, "B")

	for name, f := range engines(t, g) {
		rs, err := f.FindAll(a, b)
		require.NoError(t, err)
		assert.Equal(t, w(10, 90, 90), rs[core.Distance].Totals(), name)
		assert.Equal(t, w(90, 10, 90), rs[core.Time].Totals(), name)
		assert.Equal(t, w(90, 90, 10), rs[core.Cost].Totals(), name)
	}
}

func TestFinders_ZeroWeightRoads(t *testing.T) {
	g := buildNamed(t, []string{"A", "B", "C"}, []road{
		{"A", "B", w(0, 0, 0)},
		{"B", "C", w(0, 5, 0)},
	})
	for name, f := range engines(t, g) {
		r, err := f.FindPath(node(t, g, "A"), node(t, g, "C"), core.Time)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, names(r), name)
		assert.Equal(t, w(0, 5, 0), r.Totals(), name)
	}
}

// TestFinders_TotalsSaturate uses a detour whose distance exceeds int64.
// Totals clamp at MaxInt64 instead of wrapping negative, so the compromise
// still prefers the genuinely short road.
func TestFinders_TotalsSaturate(t *testing.T) {
	half := int64(math.MaxInt64/2 + 1)
	g := buildNamed(t, []string{"A", "B", "C"}, []road{
		{"A", "B", w(10, 10, 1000)},
		{"A", "C", w(half, 1, 1)},
		{"C", "B", w(half, 1, 1)},
	})
	a, b := node(t, g, "A"), node(t, g, "B")

	for name, f := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			rs, err := f.FindAll(a, b)
			require.NoError(t, err)

			assert.Equal(t, []string{"A", "B"}, names(rs[core.Distance]))
			for _, c := range []core.Criterion{core.Time, core.Cost} {
				assert.Equal(t, []string{"A", "C", "B"}, names(rs[c]))
				assert.Equal(t, w(math.MaxInt64, 2, 2), rs[c].Totals())
			}

			best, err := compromise.Select(rs, core.DefaultPriority)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B"}, names(best))
		})
	}
}

// TestFinders_MaxCostRoadIsReachable checks that a path costing exactly
// MaxInt64 is still a path.
func TestFinders_MaxCostRoadIsReachable(t *testing.T) {
	g := buildNamed(t, []string{"A", "B"}, []road{{"A", "B", w(math.MaxInt64, 1, 1)}})
	a, b := node(t, g, "A"), node(t, g, "B")

	for name, f := range engines(t, g) {
		r, err := f.FindPath(a, b, core.Distance)
		require.NoError(t, err, name)
		require.True(t, r.Exists(), name)
		assert.Equal(t, w(math.MaxInt64, 1, 1), r.Totals(), name)
	}
}

// ------------------------------------------------------------------------
// 4. Reconstruction consistency
// ------------------------------------------------------------------------

// TestFinders_ReconstructionConsistency checks that every reported total is
// the exact sum of the road weights between consecutive route nodes.
// RandomSparse never emits parallel roads, so each hop maps to one edge.
func TestFinders_ReconstructionConsistency(t *testing.T) {
	g := randomNetwork(t, 42, 40, 0.12)
	nodes := g.Nodes()

	edgeWeights := func(u, v core.Node) core.Weights {
		for _, e := range g.EdgesFrom(u) {
			if e.To.Is(v) {
				return e.Weights
			}
		}
		t.Fatalf("no road %s - %s", u, v)
		return core.Weights{}
	}

	for name, f := range engines(t, g) {
		for _, src := range nodes[:8] {
			for _, dst := range nodes {
				rs, err := f.FindAll(src, dst)
				require.NoError(t, err)
				for _, c := range core.Criteria {
					r := rs[c]
					if !r.Exists() {
						continue
					}
					var sum core.Weights
					for i := 1; i < r.Len(); i++ {
						sum = sum.Add(edgeWeights(r.Node(i-1), r.Node(i)))
					}
					require.Equal(t, sum, r.Totals(), "%s %s %s->%s", name, c, src, dst)
					require.True(t, r.Node(0).Is(src))
					require.True(t, r.Node(r.Len()-1).Is(dst))
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 5. Logging
// ------------------------------------------------------------------------

func TestFinders_LogOneEntryPerSearch(t *testing.T) {
	g := conflictGraph(t)
	a, b := node(t, g, "A"), node(t, g, "B")
	obs, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(obs)

	single, err := dijkstra.NewPathFinder(g, dijkstra.WithLogger(log))
	require.NoError(t, err)
	multi, err := dijkstra.NewMultiPathFinder(g, dijkstra.WithLogger(log))
	require.NoError(t, err)

	_, err = single.FindAll(a, b)
	require.NoError(t, err)
	_, err = multi.FindAll(a, b)
	require.NoError(t, err)

	assert.Equal(t, core.NumCriteria, logs.FilterMessage("single-criterion search").Len())
	entries := logs.FilterMessage("interleaved search").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["found"])
}
