// Package dfs implements depth‑first search traversal on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking, recording nodes in pre-order.
//   - Neighbors are always tried in ascending index order, so the traversal
//     is fully deterministic for a given graph and start node.
//   - An explicit stack replaces recursion; the visit order equals the
//     recursive formulation and deep graphs cannot exhaust the goroutine stack.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, OnVisit, MaxDepth
//   - DFSResult: Order (pre-order), Depth, Parent, Visited
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartOutOfRange   start index not in [0, NodeCount)
//   - context.Canceled     DFS canceled via context
//   - hook errors          propagated from OnVisit
package dfs
