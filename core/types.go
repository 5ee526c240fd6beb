// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards adjacency, edges and the optional edge index.
//   - nodeCount is fixed at construction and read without locking.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a graph was requested with fewer than one node.
	ErrBadNodeCount = errors.New("core: node count must be at least 1")

	// ErrLabelOutOfRange indicates a 1-based landmark label outside [1, NodeCount].
	ErrLabelOutOfRange = errors.New("core: label out of range")

	// ErrIndexOutOfRange indicates a 0-based node index outside [0, NodeCount).
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrLoopNotAllowed indicates a road from a landmark to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one stored road between two 0-based node indices, in the
// orientation it was inserted (U from the first label, V from the second).
type Edge struct {
	U int
	V int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeIndex backs HasEdge with a set keyed by the unordered endpoint
// pair, turning the membership test from O(degree) into O(1). Query results
// are identical with or without the index.
func WithEdgeIndex() GraphOption {
	return func(g *Graph) { g.index = make(map[[2]int]struct{}) }
}

// Graph is an undirected graph over a fixed number of integer-labeled nodes.
//
// Node i (0-based) is exposed to callers as landmark label i+1. adjacency[i]
// lists the neighbors of i in insertion order; every edge appears in both
// endpoint lists. Duplicate insertions are stored as-is.
type Graph struct {
	mu sync.RWMutex // guards adjacency, edges, index

	nodeCount int

	// adjacency[i] = neighbors of i in insertion order
	adjacency [][]int
	// edges in insertion order, duplicates included
	edges []Edge
	// unordered pair {min,max} → present; nil unless WithEdgeIndex
	index map[[2]int]struct{}
}

// NewGraph creates a Graph with n nodes and no edges.
// Returns ErrBadNodeCount when n < 1.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}
	g := &Graph{
		nodeCount: n,
		adjacency: make([][]int, n),
	}
	for i := range g.adjacency {
		g.adjacency[i] = []int{}
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// pairKey normalizes an unordered pair for the edge index.
func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}
