// File: graph.go
// Role: Builder (mutable, construction-time) and Graph (immutable, query-time).
//
// Layout:
//   - nodes[i] is the Node at dense index i (registration order).
//   - arcs[i] lists the outgoing arcs of node i in insertion order; every
//     undirected edge contributes one arc to each endpoint (one for a self-loop).
//   - byID / byName map ids and names to dense indices.
//   - component[i] labels the connected component of node i (set by Build).
//
// Concurrency:
//   - Builder is not safe for concurrent use.
//   - Graph exposes no mutating method; any number of goroutines may read it.
package core

import "fmt"

// Graph is an undirected road network with three weights per edge.
// Obtain one from Builder.Build; the zero Graph is an empty network.
type Graph struct {
	nodes     []Node
	arcs      [][]Arc
	byID      map[int]int
	byName    map[string]int
	edgeCount int
	component []int
}

// Builder registers nodes and edges and freezes them into a Graph.
type Builder struct {
	g     *Graph
	built bool
}

// NewBuilder returns an empty Builder.
// capacity is a hint for the expected node count (0 is fine).
func NewBuilder(capacity int) *Builder {
	if capacity < 0 {
		capacity = 0
	}

	return &Builder{g: &Graph{
		nodes:  make([]Node, 0, capacity),
		arcs:   make([][]Arc, 0, capacity),
		byID:   make(map[int]int, capacity),
		byName: make(map[string]int, capacity),
	}}
}

// AddNode registers a node with the given id and display name.
//
// Idempotent per id: if id is already registered the existing Node is
// returned unchanged. A name already used by another id keeps pointing at the
// first node registered with it.
//
// Complexity: O(1) amortized.
func (b *Builder) AddNode(id int, name string) (Node, error) {
	if b.built {
		return Node{}, ErrBuilt
	}
	g := b.g
	if i, ok := g.byID[id]; ok {
		return g.nodes[i], nil
	}

	n := Node{ID: id, Name: name}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.arcs = append(g.arcs, nil)
	g.byID[id] = idx
	if _, taken := g.byName[name]; !taken {
		g.byName[name] = idx
	}

	return n, nil
}

// AddEdge inserts an undirected edge between two registered nodes.
// The mirror (to → from) gets identical weights.
//
// Errors:
//   - ErrNodeNotFound if either endpoint id was never registered.
//   - ErrNegativeWeight if any weight is below zero.
//   - ErrBuilt after Build.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(fromID, toID int, w Weights) error {
	if b.built {
		return ErrBuilt
	}
	g := b.g
	u, ok := g.byID[fromID]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNodeNotFound, fromID)
	}
	v, ok := g.byID[toID]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNodeNotFound, toID)
	}
	if err := w.validate(); err != nil {
		return fmt.Errorf("edge %d - %d: %w", fromID, toID, err)
	}

	g.arcs[u] = append(g.arcs[u], Arc{From: u, To: v, Weights: w})
	if u != v {
		g.arcs[v] = append(g.arcs[v], Arc{From: v, To: u, Weights: w})
	}
	g.edgeCount++

	return nil
}

// HasID reports whether id is registered.
func (b *Builder) HasID(id int) bool {
	_, ok := b.g.byID[id]
	return ok
}

// HasName reports whether a node with the given name is registered.
func (b *Builder) HasName(name string) bool {
	_, ok := b.g.byName[name]
	return ok
}

// Build labels connected components and returns the finished Graph.
// Further mutations on b fail with ErrBuilt; calling Build again returns the same Graph.
func (b *Builder) Build() *Graph {
	if !b.built {
		b.g.component = labelComponents(b.g)
		b.built = true
	}

	return b.g
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges added.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Nodes returns a copy of all nodes in registration order.
func (g *Graph) Nodes() []Node {
	cp := make([]Node, len(g.nodes))
	copy(cp, g.nodes)

	return cp
}

// NodeByID looks a node up by its integer id.
func (g *Graph) NodeByID(id int) (Node, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// NodeByName looks a node up by its display name.
func (g *Graph) NodeByName(name string) (Node, bool) {
	i, ok := g.byName[name]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// HasName reports whether a node with the given name exists.
func (g *Graph) HasName(name string) bool {
	_, ok := g.byName[name]
	return ok
}

// EdgesFrom returns the outgoing edges of n in insertion order.
// The result is empty (not nil) for a node without edges or an unknown node.
func (g *Graph) EdgesFrom(n Node) []Edge {
	i, ok := g.byID[n.ID]
	if !ok {
		return []Edge{}
	}
	out := make([]Edge, len(g.arcs[i]))
	for k, a := range g.arcs[i] {
		out[k] = Edge{From: g.nodes[a.From], To: g.nodes[a.To], Weights: a.Weights}
	}

	return out
}

// IndexOf returns the dense index of n, used by the path engines.
func (g *Graph) IndexOf(n Node) (int, bool) {
	i, ok := g.byID[n.ID]
	return i, ok
}

// NodeAt returns the node at dense index i.
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// Arcs returns the live arc list of the node at dense index i.
// The slice is shared with the Graph and must not be modified.
func (g *Graph) Arcs(i int) []Arc {
	a := g.arcs[i]
	return a[:len(a):len(a)]
}

// Connected reports whether a path exists between a and b.
// Unknown nodes are never connected. O(1) after Build.
func (g *Graph) Connected(a, b Node) bool {
	i, ok := g.byID[a.ID]
	if !ok {
		return false
	}
	j, ok := g.byID[b.ID]
	if !ok {
		return false
	}

	return g.component[i] == g.component[j]
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	max := -1
	for _, c := range g.component {
		if c > max {
			max = c
		}
	}

	return max + 1
}
