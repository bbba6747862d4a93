// Package core provides the road-network model shared by every other
// package: nodes (cities), three-weight undirected edges (roads), the closed
// Criterion set, priority orders, routes and the immutable Graph.
//
// The network G = (V, E) is built once and never changes afterwards:
//
//   - Builder.AddNode(id, name) registers a city (idempotent per id).
//   - Builder.AddEdge(fromID, toID, Weights) adds a road usable in both
//     directions with identical weights; both endpoints must already exist.
//   - Builder.Build() freezes the network into a *Graph.
//
// Storage:
//
//	nodes[i]     – Node at dense index i (registration order)
//	arcs[i]      – outgoing arcs of node i, insertion order
//	byID, byName – secondary indices for O(1) lookup
//	component[i] – connected-component label (BFS at Build time)
//
// Dense integer indices replace pointer links between nodes and edges, so the
// structure has no reference cycles and the path engines can keep their
// per-search state in flat slices.
//
// Criteria and priorities:
//
//	Distance, Time, Cost       – ordinals 0, 1, 2 (Criteria lists them in order)
//	Criterion.Weight(w)        – selects one field of Weights
//	Priority{primary, secondary, tertiary}
//	ParseCriterion / ParsePriority accept D/T/C and the Cyrillic Д/В/С codes
//
// Routes:
//
//	Route      – node sequence + Weights totals
//	NoRoute()  – empty sequence, all totals math.MaxInt64, Exists() == false
//	Routes     – [NumCriteria]Route indexed by criterion ordinal
//
// Errors:
//
//	ErrNodeNotFound     – edge endpoint (or query node) not registered
//	ErrNegativeWeight   – edge weight below zero
//	ErrBuilt            – Builder mutated after Build
//	ErrInvalidPriority  – priority is not a permutation
//	ErrUnknownCriterion – unparseable criterion code
//
// Concurrency: a Builder is single-goroutine; a built Graph is read-only and
// safe for any number of concurrent readers.
package core
