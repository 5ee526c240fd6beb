// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = hub + Cₙ₋₁. The hub is the first node; the rim occupies the next n-1.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Builds the rim using Cycle(n-1) shifted by one label.
//   • Emits spokes from the hub to each rim node in index order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/landmarks/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := validateFits(MethodWheel, g.NodeCount(), n, cfg); err != nil {
			return err
		}

		// Rim: reuse Cycle with the same cfg shifted past the hub.
		rim := cfg
		rim.offset++
		if err := Cycle(n-1)(g, rim); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}

		for i := 1; i < n; i++ {
			if err := addRoad(MethodWheel, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
