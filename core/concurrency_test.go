// Package core_test verifies that a built Graph serves concurrent readers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triroute/core"
)

// TestConcurrentReads runs lookups, edge listings and component queries from
// many goroutines against one Graph (run with -race).
func TestConcurrentReads(t *testing.T) {
	const n = 200
	b := core.NewBuilder(n)
	for i := 0; i < n; i++ {
		mustAddNode(t, b, i, fmt.Sprintf("N%d", i))
	}
	for i := 1; i < n; i++ {
		mustAddEdge(t, b, i-1, i, w(int64(i), 1, 1))
	}
	g := b.Build()

	const readers = 50
	failures := make([]string, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				node, ok := g.NodeByName(fmt.Sprintf("N%d", i))
				if !ok || node.ID != i {
					failures[r] = fmt.Sprintf("lookup N%d failed", i)
					return
				}
				want := 2
				if i == 0 || i == n-1 {
					want = 1
				}
				if got := len(g.EdgesFrom(node)); got != want {
					failures[r] = fmt.Sprintf("N%d: %d edges, want %d", i, got, want)
					return
				}
				if !g.Connected(node, g.NodeAt((i+r)%n)) {
					failures[r] = fmt.Sprintf("N%d unexpectedly disconnected", i)
					return
				}
			}
		}(r)
	}
	wg.Wait()

	for r, f := range failures {
		require.Empty(t, f, "reader %d", r)
	}
}
