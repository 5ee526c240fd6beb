// Package dfs implements single-source depth‑first search on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): pre-order traversal, neighbors in ascending index order
//   - Explicit stack of frames instead of recursion: the visit order matches the
//     recursive formulation while auxiliary memory stays O(V) regardless of depth
//   - Hooks: OnVisit (pre‑order) with error abort
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted once per visited node).
//   - Memory: O(V + E) for the frame stack and sorted neighbor copies.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/landmarks/core"
)

// frame is one level of the explicit DFS stack: a node, its sorted
// neighbors, and the cursor of the next neighbor to try.
type frame struct {
	id    int
	depth int
	nbrs  []int
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
	stack []frame
}

// DFS performs depth‑first search on graph g from the 0-based start index.
// Neighbors are explored in ascending order; the stored adjacency is not modified.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Verify start
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res, stack: make([]frame, 0, n)}

	// 5. Traverse
	if err := walker.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// traverse runs the explicit-stack loop from start.
func (w *dfsWalker) traverse(start int) error {
	if err := w.discover(start, -1, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. Exhausted: pop
		if top.next >= len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 3. Advance cursor before descending
		nid := top.nbrs[top.next]
		top.next++
		if w.res.Visited[nid] {
			continue
		}

		// 4. Depth limit
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}

		if err := w.discover(nid, top.id, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, runs the pre-order hook, and pushes its frame.
func (w *dfsWalker) discover(id, parent, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	nbrs, err := w.graph.SortedNeighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: SortedNeighbors(%d): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}
