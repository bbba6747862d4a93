package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triroute/core"
)

// Common node ids used across core tests.
const (
	IDA = 1
	IDB = 2
	IDC = 3
	IDD = 4
)

// w is shorthand for a Weights literal.
func w(d, t, c int64) core.Weights {
	return core.Weights{Distance: d, Time: t, Cost: c}
}

// mustAddNode registers a node or fails the test.
func mustAddNode(t testing.TB, b *core.Builder, id int, name string) core.Node {
	t.Helper()
	n, err := b.AddNode(id, name)
	require.NoError(t, err)

	return n
}

// mustAddEdge adds an edge or fails the test.
func mustAddEdge(t testing.TB, b *core.Builder, from, to int, wt core.Weights) {
	t.Helper()
	require.NoError(t, b.AddEdge(from, to, wt))
}

// buildABC returns A–B (10,10,10), B–C (5,5,5) and an isolated D.
func buildABC(t testing.TB) *core.Graph {
	t.Helper()
	b := core.NewBuilder(4)
	mustAddNode(t, b, IDA, "A")
	mustAddNode(t, b, IDB, "B")
	mustAddNode(t, b, IDC, "C")
	mustAddNode(t, b, IDD, "D")
	mustAddEdge(t, b, IDA, IDB, w(10, 10, 10))
	mustAddEdge(t, b, IDB, IDC, w(5, 5, 5))

	return b.Build()
}
