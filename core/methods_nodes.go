// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node queries and label/index conversion.
// Determinism:
//   - Neighbors keeps insertion order; SortedNeighbors is ascending.
//   - Both return fresh slices; callers may mutate them freely.

package core

import (
	"fmt"
	"sort"
)

// NodeCount returns the fixed number of nodes.
func (g *Graph) NodeCount() int { return g.nodeCount }

// Index converts a 1-based landmark label into a 0-based node index.
// Returns ErrLabelOutOfRange when label is outside [1, NodeCount].
func (g *Graph) Index(label int) (int, error) {
	if label < 1 || label > g.nodeCount {
		return 0, fmt.Errorf("%w: %d not in [1,%d]", ErrLabelOutOfRange, label, g.nodeCount)
	}
	return label - 1, nil
}

// Label converts a 0-based node index into its 1-based landmark label.
// Returns ErrIndexOutOfRange when index is outside [0, NodeCount).
func (g *Graph) Label(index int) (int, error) {
	if !g.validIndex(index) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, g.nodeCount)
	}
	return index + 1, nil
}

// Neighbors returns a copy of the neighbor list of node i in insertion order.
// Complexity: O(deg(i)).
func (g *Graph) Neighbors(i int) ([]int, error) {
	if !g.validIndex(i) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrIndexOutOfRange)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// SortedNeighbors returns the neighbors of node i in ascending order.
// The stored list is left untouched.
// Complexity: O(d·log d).
func (g *Graph) SortedNeighbors(i int) ([]int, error) {
	out, err := g.Neighbors(i)
	if err != nil {
		return nil, err
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the length of node i's neighbor list (duplicates counted).
func (g *Graph) Degree(i int) (int, error) {
	if !g.validIndex(i) {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrIndexOutOfRange)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[i]), nil
}

func (g *Graph) validIndex(i int) bool {
	return i >= 0 && i < g.nodeCount
}
