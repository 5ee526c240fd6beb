// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbor lists keep insertion order; nothing is sorted in place.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge inserts an undirected road between landmarks a and b (1-based).
//
// Steps:
//  1. Validate both labels against [1, NodeCount].
//  2. Reject a == b with ErrLoopNotAllowed.
//  3. Lock, append b-1 to adjacency[a-1] and a-1 to adjacency[b-1].
//  4. Record the edge and, when indexed, its unordered key.
//
// Duplicates are appended again; they never change any distance or membership answer.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int) error {
	u, err := g.Index(a)
	if err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, err)
	}
	v, err := g.Index(b)
	if err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, err)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.edges = append(g.edges, Edge{U: u, V: v})
	if g.index != nil {
		g.index[pairKey(u, v)] = struct{}{}
	}

	return nil
}

// HasEdge reports whether j is a neighbor of i (both 0-based).
// Without WithEdgeIndex this is a linear scan of adjacency[i].
// Out-of-range indices report false.
func (g *Graph) HasEdge(i, j int) bool {
	if !g.validIndex(i) || !g.validIndex(j) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.index != nil {
		_, ok := g.index[pairKey(i, j)]
		return ok
	}
	for _, n := range g.adjacency[i] {
		if n == j {
			return true
		}
	}

	return false
}

// Edges returns a copy of all inserted edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of AddEdge insertions, duplicates included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Indexed reports whether HasEdge is backed by the O(1) edge index.
func (g *Graph) Indexed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index != nil
}
