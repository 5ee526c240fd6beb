// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The center is the first node (label offset+1); leaves follow in order.
//   • Emits spokes (center, k) for k=1..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/landmarks/core"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := validateFits(MethodStar, g.NodeCount(), n, cfg); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := addRoad(MethodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
