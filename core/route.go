package core

import (
	"math"
	"strings"
)

// NoRouteText is the display text of the no-path sentinel.
const NoRouteText = "no route"

// infiniteTotals are the totals of the no-path sentinel.
var infiniteTotals = Weights{Distance: math.MaxInt64, Time: math.MaxInt64, Cost: math.MaxInt64}

// Route is an ordered node sequence with its three aggregate totals.
//
// A Route with an empty sequence is the "no path" sentinel: Exists reports
// false and every total is math.MaxInt64. Routes are values; the node slice is
// never exposed for mutation.
type Route struct {
	nodes  []Node
	totals Weights
}

// NewRoute copies nodes into a new Route with the given totals.
// An empty nodes slice yields NoRoute regardless of totals.
func NewRoute(nodes []Node, totals Weights) Route {
	if len(nodes) == 0 {
		return NoRoute()
	}
	cp := make([]Node, len(nodes))
	copy(cp, nodes)

	return Route{nodes: cp, totals: totals}
}

// NoRoute returns the canonical "no path exists" sentinel.
func NoRoute() Route {
	return Route{totals: infiniteTotals}
}

// Exists reports whether r holds at least one node.
func (r Route) Exists() bool { return len(r.nodes) > 0 }

// Len returns the number of nodes in r.
func (r Route) Len() int { return len(r.nodes) }

// Nodes returns a copy of the node sequence.
func (r Route) Nodes() []Node {
	cp := make([]Node, len(r.nodes))
	copy(cp, r.nodes)

	return cp
}

// Node returns the i-th node of the sequence.
func (r Route) Node(i int) Node { return r.nodes[i] }

// Totals returns the summed distance, time and cost.
func (r Route) Totals() Weights { return r.totals }

// Value returns the total named by c. Panics if c is invalid.
func (r Route) Value(c Criterion) int64 { return c.Weight(r.totals) }

// Equal reports whether r and o visit the same node IDs in the same order.
// Totals are not compared; the sentinel equals only another sentinel.
func (r Route) Equal(o Route) bool {
	if len(r.nodes) != len(o.nodes) {
		return false
	}
	for i := range r.nodes {
		if !r.nodes[i].Is(o.nodes[i]) {
			return false
		}
	}

	return true
}

// Path renders the node names joined by " -> ", or NoRouteText.
func (r Route) Path() string {
	if !r.Exists() {
		return NoRouteText
	}
	var sb strings.Builder
	for i, n := range r.nodes {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(n.Name)
	}

	return sb.String()
}

// String renders "n1 -> n2 | distance=D, time=T, cost=C", or NoRouteText.
func (r Route) String() string {
	if !r.Exists() {
		return NoRouteText
	}

	return r.Path() + " | " + r.totals.String()
}

// Routes holds one Route per criterion, indexed by criterion ordinal.
type Routes [NumCriteria]Route

// NoRoutes returns Routes with every entry set to the sentinel.
func NoRoutes() Routes {
	var rs Routes
	for i := range rs {
		rs[i] = NoRoute()
	}

	return rs
}

// Get returns the route optimal under c. Panics if c is invalid.
func (rs Routes) Get(c Criterion) Route {
	c.mustValid()

	return rs[c]
}
