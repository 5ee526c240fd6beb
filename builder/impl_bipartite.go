// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition is local 0..n1-1, right partition is n1..n1+n2-1.
//   • Emits every cross pair, i asc over the left side, inner j asc over the right.
//
// Complexity:
//   • Time: O(n1·n2). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/landmarks/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if err := validateFits(methodCompleteBipartite, g.NodeCount(), n1+n2, cfg); err != nil {
			return err
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addRoad(methodCompleteBipartite, g, cfg, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
