// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; indices 1..n-1 are leaves.
//   - Emits spokes hub - leaf[i] in ascending leaf order.
//
// Complexity: O(n) nodes + O(n-1) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub-and-spoke network: every route
// between two leaves passes through the hub at index 0.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodStar, b, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addRoad(methodStar, b, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
