// SPDX-License-Identifier: MIT
//
// File: planner.go
// Role: Plan and CandidateDistance.
//
// Algorithm:
//  1. Two BFS runs give distance vectors from X and from Y.
//  2. If Y is unreachable from X, stop with NoInitialPath.
//  3. Scan every unordered pair i<j that is not already a road. Adding road
//     i–j offers two routes, X…i–j…Y and X…j–i…Y; the shorter is the
//     candidate distance. The pair is valid iff it is not below the original.
//
// Complexity: O(V + E) for the two searches, O(V²·d) for the scan
// (O(V²) with core.WithEdgeIndex).

package roads

import (
	"fmt"

	"github.com/katalvlaran/landmarks/bfs"
	"github.com/katalvlaran/landmarks/core"
)

// Plan enumerates every new road between two landmarks that would not
// shorten the shortest route between landmarks x and y (1-based labels).
func Plan(g *core.Graph, x, y int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.NodeCount()
	if x < 1 || x > n || y < 1 || y > n {
		return nil, fmt.Errorf("%w: x=%d, y=%d not in [1,%d]", ErrLabelOutOfRange, x, y, n)
	}
	if x == y {
		return nil, fmt.Errorf("%w: x=y=%d", ErrSameLandmark, x)
	}

	fromX, err := bfs.Distances(g, x-1, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("roads: distances from %d: %w", x, err)
	}
	fromY, err := bfs.Distances(g, y-1, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("roads: distances from %d: %w", y, err)
	}

	res := &Result{
		OriginalDistance: fromX[y-1],
		FromX:            fromX,
		FromY:            fromY,
	}
	if !fromX.Reachable(y - 1) {
		res.Status = NoInitialPath
		return res, nil
	}

	for i := 0; i < n; i++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		for j := i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				continue
			}
			d, finite := CandidateDistance(fromX, fromY, i, j, o.Mode)
			valid := !finite || d >= res.OriginalDistance
			if o.OnCandidate != nil {
				o.OnCandidate(Candidate{I: i, J: j, Distance: d, Finite: finite, Valid: valid})
			}
			if valid {
				res.Pairs = append(res.Pairs, Pair{A: i + 1, B: j + 1})
			}
		}
	}

	if len(res.Pairs) == 0 {
		res.Status = NoValidPairs
	} else {
		res.Status = Feasible
	}

	return res, nil
}

// CandidateDistance returns the X–Y distance through a new road i–j
// (0-based), given distance vectors from X (dx) and from Y (dy).
//
// In ModeLiteral the result is always finite and unreachable entries enter
// the sum as -1. In ModeUnreachableInfinite a route touching an unreachable
// node is dropped; when both routes are dropped, finite is false.
func CandidateDistance(dx, dy bfs.DistanceVector, i, j int, mode Mode) (dist int, finite bool) {
	if mode == ModeLiteral {
		return min(dx[i]+1+dy[j], dx[j]+1+dy[i]), true
	}

	through := func(a, b int) (int, bool) {
		if !dx.Reachable(a) || !dy.Reachable(b) {
			return 0, false
		}
		return dx[a] + 1 + dy[b], true
	}

	d1, ok1 := through(i, j)
	d2, ok2 := through(j, i)
	switch {
	case ok1 && ok2:
		return min(d1, d2), true
	case ok1:
		return d1, true
	case ok2:
		return d2, true
	default:
		return 0, false
	}
}
