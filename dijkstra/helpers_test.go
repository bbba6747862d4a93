package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triroute/builder"
	"github.com/katalvlaran/triroute/core"
)

// road is one undirected edge of a fixture, endpoints by name.
type road struct {
	u, v string
	w    core.Weights
}

// w is shorthand for a Weights literal.
func w(d, t, c int64) core.Weights {
	return core.Weights{Distance: d, Time: t, Cost: c}
}

// buildNamed registers names with ids 1..n in order and adds roads.
func buildNamed(t testing.TB, names []string, roads []road) *core.Graph {
	t.Helper()
	b := core.NewBuilder(len(names))
	ids := make(map[string]int, len(names))
	for i, name := range names {
		_, err := b.AddNode(i+1, name)
		require.NoError(t, err)
		ids[name] = i + 1
	}
	for _, r := range roads {
		require.NoError(t, b.AddEdge(ids[r.u], ids[r.v], r.w))
	}

	return b.Build()
}

// node returns the node named name or fails the test.
func node(t testing.TB, g *core.Graph, name string) core.Node {
	t.Helper()
	n, ok := g.NodeByName(name)
	require.True(t, ok, "node %q", name)

	return n
}

// names renders a route as its node names.
func names(r core.Route) []string {
	out := make([]string, 0, r.Len())
	for _, n := range r.Nodes() {
		out = append(out, n.Name)
	}

	return out
}

// conflictGraph is the direct-but-expensive versus detour-but-cheap network:
// A–B (100,60,500), A–C (150,30,100), C–B (150,30,100).
func conflictGraph(t testing.TB) *core.Graph {
	return buildNamed(t, []string{"A", "B", "C"}, []road{
		{"A", "B", w(100, 60, 500)},
		{"A", "C", w(150, 30, 100)},
		{"C", "B", w(150, 30, 100)},
	})
}

// randomNetwork returns a seeded sparse network with independent weights per
// criterion, so the three optima usually differ.
func randomNetwork(t testing.TB, seed int64, n int, p float64) *core.Graph {
	t.Helper()
	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, 20)),
		},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}
