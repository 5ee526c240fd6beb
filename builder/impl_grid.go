// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node (r,c) is constructor-local index r*cols + c (row-major).
//   • For each cell emits the right road (r,c)-(r,c+1) first, then the
//     bottom road (r,c)-(r+1,c), scanning cells in row-major order.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/landmarks/core"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := validateFits(MethodGrid, g.NodeCount(), rows*cols, cfg); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addRoad(MethodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(MethodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
