// Package roads plans new roads between landmarks without shortening the
// route between two designated landmarks X and Y.
//
// What:
//
//   - Plan(g, x, y, opts...): for every unordered pair of landmarks not yet
//     joined by a road, decide whether adding that road keeps the X–Y
//     shortest-path length unchanged, and list the pairs that do.
//   - CandidateDistance: the X–Y distance through one hypothetical road.
//
// Outcomes:
//
//   - Feasible       at least one valid pair; Result.Pairs in (i asc, j asc) order
//   - NoInitialPath  X and Y are disconnected; no pair is examined
//   - NoValidPairs   every candidate shortens the route, or there is none
//
// Unreachable arithmetic:
//
// By default (ModeLiteral) an unreachable distance enters candidate sums as
// the literal -1, which reproduces the reference planner output but can make
// a route through a disconnected landmark look short. WithMode(ModeUnreachableInfinite)
// treats such routes as infinitely long instead.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrLabelOutOfRange   x or y not in [1, NodeCount]
//   - ErrSameLandmark      x == y
//   - context.Canceled     canceled via WithContext
package roads
