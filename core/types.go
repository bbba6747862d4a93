// Package core defines the road-network entities (Node, Weights, Edge), the
// immutable Graph and the Builder that produces it.
//
// This file declares Node, Weights, Edge, Arc and the sentinel errors.
//
// Errors:
//
//	ErrNodeNotFound    - an edge endpoint or query node is not registered.
//	ErrNegativeWeight  - an edge weight is below zero.
//	ErrBuilt           - the Builder was used after Build.
//	ErrInvalidPriority - a Priority is not a permutation of the three criteria.
//	ErrUnknownCriterion - a criterion code could not be parsed.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that was never registered.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBuilt indicates a Builder mutation after Build froze the graph.
	ErrBuilt = errors.New("core: builder already built")

	// ErrInvalidPriority indicates a priority order that is not a permutation
	// of {Distance, Time, Cost}.
	ErrInvalidPriority = errors.New("core: priority is not a permutation of criteria")

	// ErrUnknownCriterion indicates an unrecognized criterion code.
	ErrUnknownCriterion = errors.New("core: unknown criterion")
)

// Node is a city in the road network.
//
// Identity is defined solely by ID; two Nodes with the same ID are
// interchangeable (Name is display data only).
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID int

	// Name is the human-readable city name.
	Name string
}

// Is reports whether n and o denote the same node (same ID).
func (n Node) Is(o Node) bool { return n.ID == o.ID }

// String returns the display name.
func (n Node) String() string { return n.Name }

// Weights carries the three raw edge (or route) quantities.
// All values are non-negative for edges; route totals are sums of edge weights.
type Weights struct {
	Distance int64 // kilometres
	Time     int64 // minutes
	Cost     int64 // currency units
}

// Add returns the field-wise sum of w and o, each field clamped at
// math.MaxInt64 (see SaturatingAdd).
func (w Weights) Add(o Weights) Weights {
	return Weights{
		Distance: SaturatingAdd(w.Distance, o.Distance),
		Time:     SaturatingAdd(w.Time, o.Time),
		Cost:     SaturatingAdd(w.Cost, o.Cost),
	}
}

// SaturatingAdd returns a+b for non-negative a and b, or math.MaxInt64 when
// the sum does not fit. Route totals never wrap negative.
func SaturatingAdd(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + b
}

// String formats w as "distance=D, time=T, cost=C".
func (w Weights) String() string {
	return fmt.Sprintf("distance=%d, time=%d, cost=%d", w.Distance, w.Time, w.Cost)
}

// validate rejects negative components.
func (w Weights) validate() error {
	if w.Distance < 0 || w.Time < 0 || w.Cost < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeWeight, w)
	}

	return nil
}

// Edge is a traversable road from one node to another.
//
// The network is undirected: for every Edge (u, v, w) added through the
// Builder, Edge (v, u, w) is traversable as well.
type Edge struct {
	From    Node
	To      Node
	Weights Weights
}

// String formats the edge as "From - To: distance=..., time=..., cost=...".
func (e Edge) String() string {
	return fmt.Sprintf("%s - %s: %s", e.From.Name, e.To.Name, e.Weights)
}

// Arc is the dense-index form of a directed half of an undirected edge.
// From and To are positions in the Graph's node array (see Graph.IndexOf).
type Arc struct {
	From    int
	To      int
	Weights Weights
}
