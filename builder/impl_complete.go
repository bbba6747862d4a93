// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds nodes 0..n-1, then one road per unordered pair {i,j}, i<j,
//     in (i asc, j asc) order.
//
// Complexity: O(n) nodes + O(n²) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete network K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodComplete, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addRoad(methodComplete, b, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
