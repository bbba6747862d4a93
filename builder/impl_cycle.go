// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes for indices 0..n-1, then roads i - (i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodCycle, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addRoad(methodCycle, b, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
