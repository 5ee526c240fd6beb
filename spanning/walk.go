// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: depth-first spanning walk over all landmarks from a chosen start.

package spanning

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/dfs"
)

// ReferenceStart is the start label that reproduces the reference walk output.
const ReferenceStart = 3

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("spanning: graph is nil")

	// ErrLabelOutOfRange indicates the start label is not in [1, NodeCount].
	ErrLabelOutOfRange = errors.New("spanning: start label out of range")
)

// Result is the outcome of Walk.
type Result struct {
	// Connected reports whether the walk reached every landmark.
	Connected bool

	// Moves is NodeCount-1 when Connected, 0 otherwise.
	Moves int

	// Order lists 1-based labels in visit order. On a disconnected network it
	// holds the partial walk of the start's component.
	Order []int
}

// Option configures Walk.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(label int) error
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit installs a hook called with each label as it is first visited.
// Returning an error aborts the walk.
func WithOnVisit(fn func(label int) error) Option {
	return func(o *options) { o.onVisit = fn }
}

// Walk visits every landmark reachable from start (1-based) depth-first,
// always trying neighbors in ascending label order.
func Walk(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	idx, err := g.Index(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrLabelOutOfRange, start, g.NodeCount())
	}

	dopts := []dfs.Option{dfs.WithContext(o.ctx)}
	if o.onVisit != nil {
		dopts = append(dopts, dfs.WithOnVisit(func(id int) error { return o.onVisit(id + 1) }))
	}
	tr, err := dfs.DFS(g, idx, dopts...)
	if err != nil {
		return nil, fmt.Errorf("spanning: walk from %d: %w", start, err)
	}

	res := &Result{
		Connected: tr.AllVisited(),
		Order:     make([]int, len(tr.Order)),
	}
	for i, id := range tr.Order {
		res.Order[i] = id + 1
	}
	if res.Connected {
		res.Moves = g.NodeCount() - 1
	}

	return res, nil
}
