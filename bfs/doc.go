// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (road count) from a source index.
//   - BFSResult contains:
//   - Order: visit sequence
//   - Depth: the DistanceVector, Unreachable (-1) for undiscovered nodes
//   - Parent: predecessor in the BFS tree, -1 for the source
//   - Distances(g, source) is the shortcut returning only the DistanceVector.
//   - Hooks: OnEnqueue (at discovery) and OnVisit (at dequeue; may abort).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are expanded in the graph's insertion order and each node's
//	distance is fixed at first discovery, never overwritten. Two runs on an
//	unmodified graph return identical results.
//
// Complexity (V = NodeCount, E = EdgeCount)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	dist, err := bfs.Distances(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, ctx or hook errors
//	}
//	if dist[4] == bfs.Unreachable { ... }
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if the source is not in [0, NodeCount).
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
