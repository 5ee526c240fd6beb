// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks and depth limiting.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start index is not a node of the graph.
	ErrStartOutOfRange = errors.New("dfs: start index out of range")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// MaxDepth, if non-negative, limits the traversal to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a node is first discovered.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were discovered (pre-order).
	Order []int

	// Depth maps each node to its tree depth from the start, -1 if not visited.
	Depth []int

	// Parent is the node from which each node was first discovered.
	// The start node and unvisited nodes hold -1.
	Parent []int

	// Visited flags which nodes were reached during the traversal.
	Visited []bool
}

// AllVisited reports whether the traversal reached every node.
func (r *DFSResult) AllVisited() bool {
	for _, v := range r.Visited {
		if !v {
			return false
		}
	}
	return true
}
