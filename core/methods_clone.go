// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: node count, adjacency lists in the
// same order, edge catalog, and the edge index when present.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodeCount: g.nodeCount,
		adjacency: make([][]int, g.nodeCount),
		edges:     make([]Edge, len(g.edges)),
	}
	for i, nbrs := range g.adjacency {
		clone.adjacency[i] = append([]int{}, nbrs...)
	}
	copy(clone.edges, g.edges)
	if g.index != nil {
		clone.index = make(map[[2]int]struct{}, len(g.index))
		for k := range g.index {
			clone.index[k] = struct{}{}
		}
	}

	return clone
}
