// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a source node,
// with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/landmarks/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from the 0-based source index,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, source int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// Prepare walker; every node starts Unreachable with no parent.
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Source: source,
			Order:  make([]int, 0, n),
			Depth:  make(DistanceVector, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreachable
		w.res.Parent[i] = -1
	}

	// Seed queue with the source (no parent)
	w.enqueue(source, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// Distances returns the DistanceVector from the 0-based source: the
// shortest road count to every node, Unreachable where no path exists.
// The vector is computed fresh on every call and owned by the caller.
// Complexity: O(V + E).
func Distances(g *core.Graph, source int, opts ...Option) (DistanceVector, error) {
	res, err := BFS(g, source, opts...)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}

// enqueue fixes the distance of id at first discovery, records its parent,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors walks the neighbor list in insertion order and enqueues
// every node not yet discovered, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// first time seen?
		if w.res.Depth[nbr] == Unreachable {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}
