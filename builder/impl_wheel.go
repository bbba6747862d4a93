// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Definition: W_n = C_{n-1} plus a hub, i.e. a ring road over indices
// 0..n-2 and a hub at index n-1 joined to every ring node.
//
// Contract:
//   - n ≥ 4 (the ring must be a valid cycle), else ErrTooFewVertices.
//   - Builds the ring with Cycle(n-1) under the same cfg, then the hub,
//     then spokes hub - ring[i] in ascending ring order.
//
// Complexity: O(n) nodes + O(2(n-1)) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a ring road with a central hub.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := n - 1
		if _, err := b.AddNode(cfg.id(hub), cfg.nameFn(hub)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", methodWheel, cfg.id(hub), err)
		}
		for i := 0; i < hub; i++ {
			if err := addRoad(methodWheel, b, cfg, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
