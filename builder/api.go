// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, then freezes the Graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical networks.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

// Constructor applies a deterministic mutation to a core.Builder using the
// resolved builderConfig. Constructors validate parameters before touching
// the builder and return sentinel errors.
//
// Constructors address nodes by index: index i maps to id cfg.idOffset+i and
// name cfg.nameFn(i). Composing constructors over overlapping index ranges
// overlays their edges on the same nodes.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildNetwork creates a core.Builder, resolves the builder configuration from
// bopts, applies all constructors in order and returns the built Graph.
// Any constructor error is wrapped as "BuildNetwork: %w" and returned
// immediately.
//
// Complexity: O(len(bopts)) for options plus the sum of constructor costs.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return b.Build(), nil
}

// addNodes registers the nodes for indices [0, n) in ascending order.
func addNodes(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if _, err := b.AddNode(cfg.id(i), cfg.nameFn(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, cfg.id(i), err)
		}
	}

	return nil
}

// addRoad draws weights and connects indices u and v.
func addRoad(method string, b *core.Builder, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := b.AddEdge(cfg.id(u), cfg.id(v), w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d - %d, %s): %w", method, cfg.id(u), cfg.id(v), w, err)
	}

	return nil
}
