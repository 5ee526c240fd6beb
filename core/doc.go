// Package core provides the undirected landmark graph shared by every
// algorithm in this module.
//
// The Graph G = (V,E) is deliberately small:
//
//   - A fixed node count chosen at construction (NewGraph(n), n ≥ 1).
//   - Nodes are 0-based indices internally and 1-based labels ("landmarks")
//     at the public edge-insertion boundary: AddEdge(1, 2) connects indices 0 and 1.
//   - Symmetric adjacency lists: AddEdge(a,b) appends b to a's list and a to b's.
//   - Self-loops are rejected; duplicate roads are stored as given.
//   - HasEdge is a linear scan of the neighbor list, or O(1) with WithEdgeIndex().
//   - A sync.RWMutex guards adjacency so a finished graph can be shared
//     between readers.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(a, b int) error                              // O(1), 1-based labels
//	HasEdge(i, j int) bool                               // O(deg(i)) or O(1) indexed
//	Neighbors(i int) ([]int, error)                      // insertion order copy
//	SortedNeighbors(i int) ([]int, error)                // ascending copy
//	Degree(i int) (int, error)
//	NodeCount() int
//	EdgeCount() int
//	Edges() []Edge
//	Index(label int) (int, error) / Label(index int) (int, error)
//	Clone() *Graph
//	Stats() *GraphStats
//
// Errors:
//
//	ErrBadNodeCount    – NewGraph with n < 1
//	ErrLabelOutOfRange – label outside [1, NodeCount]
//	ErrIndexOutOfRange – index outside [0, NodeCount)
//	ErrLoopNotAllowed  – AddEdge(a, a)
package core
