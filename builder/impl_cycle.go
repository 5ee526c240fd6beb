// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits roads (i, i+1) for i=0..n-2, then the closing road (n-1, 0).
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/landmarks/core"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := validateFits(MethodCycle, g.NodeCount(), n, cfg); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			// (n-1, 0) closes the ring on the last step.
			if err := addRoad(MethodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
