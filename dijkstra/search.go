package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/triroute/core"
)

// search holds the mutable state of one single-criterion Dijkstra run.
// Nothing in it is shared with any other search; both engines drive it
// through step, which is what makes their results identical.
type search struct {
	g         *core.Graph    // read-only network
	criterion core.Criterion // weight field used as traversal cost
	source    int            // dense index of the start node
	target    int            // dense index of the destination node
	dist      []int64        // best known cost from source, valid where reached
	reached   []bool         // dist holds a real path cost
	via       []core.Arc     // arc used to reach each node (unset for source)
	settled   []bool         // finalized nodes
	pq        nodePQ         // lazy min-heap, may hold stale entries
	nSettled  int            // settled-node counter for diagnostics
}

// newSearch allocates call-local state sized to the graph and seeds source with 0.
func newSearch(g *core.Graph, c core.Criterion, source, target int) *search {
	n := g.NodeCount()
	s := &search{
		g:         g,
		criterion: c,
		source:    source,
		target:    target,
		dist:      make([]int64, n),
		via:       make([]core.Arc, n),
		reached:   make([]bool, n),
		settled:   make([]bool, n),
		pq:        make(nodePQ, 0, n),
	}
	for i := range s.dist {
		s.dist[i] = math.MaxInt64
	}
	s.dist[source] = 0
	s.reached[source] = true
	heap.Push(&s.pq, nodeItem{idx: source, dist: 0})

	return s
}

// active reports whether the search can still make progress toward target.
func (s *search) active() bool {
	return s.pq.Len() > 0 && !s.settled[s.target]
}

// step pops entries until it finds an unsettled node, settles it and, unless
// it is the target, relaxes its arcs. Stale entries (lazy deletion) are
// discarded on the way. At most one node is settled per call.
func (s *search) step() {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(nodeItem)
		u := item.idx
		if s.settled[u] {
			continue // stale duplicate
		}
		s.settled[u] = true
		s.nSettled++
		if u != s.target {
			s.relax(u)
		}

		return
	}
}

// relax improves the tentative cost of every unsettled neighbor of u.
// Assumes dist[u] is final.
func (s *search) relax(u int) {
	du := s.dist[u]
	for _, a := range s.g.Arcs(u) {
		v := a.To
		if s.settled[v] {
			continue
		}
		// Clamped at MaxInt64, so a path costing exactly MaxInt64 still counts.
		cand := core.SaturatingAdd(du, s.criterion.Weight(a.Weights))
		// Strictly better only; equal-cost alternatives keep the first arc found.
		if s.reached[v] && cand >= s.dist[v] {
			continue
		}
		s.dist[v] = cand
		s.reached[v] = true
		s.via[v] = a
		heap.Push(&s.pq, nodeItem{idx: v, dist: cand})
	}
}

// route rebuilds the path to target by walking recorded arcs backwards and
// summing all three raw weights, or returns NoRoute if target was never settled.
func (s *search) route() core.Route {
	if !s.settled[s.target] {
		return core.NoRoute()
	}

	var totals core.Weights
	rev := make([]core.Node, 0, 8)
	v := s.target
	for v != s.source {
		rev = append(rev, s.g.NodeAt(v))
		a := s.via[v]
		totals = totals.Add(a.Weights)
		v = a.From
	}
	rev = append(rev, s.g.NodeAt(s.source))

	// Reverse in place: the walk went destination → source.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return core.NewRoute(rev, totals)
}

// singleton is the route of a query whose source equals its destination.
func singleton(n core.Node) core.Route {
	return core.NewRoute([]core.Node{n}, core.Weights{})
}

// nodeItem is a queue entry: a dense node index and its tentative cost.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
// Decrease-key is emulated by pushing duplicates; step drops stale ones.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist first.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
