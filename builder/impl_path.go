// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes for indices 0..n-1 in ascending order.
//   - Emits roads (i-1) - i for i=1..n-1 in increasing order.
//
// Complexity: O(n) nodes + O(n-1) roads; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodPath, b, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addRoad(methodPath, b, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
