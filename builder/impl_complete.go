// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 has no roads.
//   • Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.

package builder

import "github.com/katalvlaran/landmarks/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateFits(MethodComplete, g.NodeCount(), n, cfg); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addRoad(MethodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
