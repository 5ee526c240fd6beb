// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Labels offset+1 … offset+n must exist (else ErrGraphTooSmall).
//   - Emits roads (k, k+1) for k=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) roads.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/landmarks/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := validateFits(MethodPath, g.NodeCount(), n, cfg); err != nil {
			return err
		}

		// Emit path roads 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := addRoad(MethodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
