// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph instance.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount     int  // fixed node count
	EdgeCount     int  // insertions, duplicates included
	DistinctEdges int  // unordered pairs actually connected
	Isolated      int  // nodes with an empty neighbor list
	MaxDegree     int  // longest neighbor list
	Indexed       bool // HasEdge backed by the edge index
}

// Stats returns a snapshot summary of g.
//
// Implementation:
//   - Stage 1: Under the read lock, scan adjacency once for degree figures.
//   - Stage 2: Count distinct unordered pairs from the edge catalog.
//
// Complexity: Time O(V + E), Space O(E) for the distinct-pair set.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: g.nodeCount,
		EdgeCount: len(g.edges),
		Indexed:   g.index != nil,
	}
	for _, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			stats.Isolated++
		}
		if len(nbrs) > stats.MaxDegree {
			stats.MaxDegree = len(nbrs)
		}
	}

	seen := make(map[[2]int]struct{}, len(g.edges))
	for _, e := range g.edges {
		seen[pairKey(e.U, e.V)] = struct{}{}
	}
	stats.DistinctEdges = len(seen)

	return &stats
}
