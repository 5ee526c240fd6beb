// SPDX-License-Identifier: MIT
//
// File: road.go
// Role: road planner query reader and result writer.

package cityio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/roads"
)

// RoadQuery is one road planner input.
type RoadQuery struct {
	Nodes int
	X, Y  int
	Roads [][2]int
}

// ReadRoadQuery parses "N M X Y" followed by M pairs.
func ReadRoadQuery(r io.Reader) (*RoadQuery, error) {
	t := newTokens(r)
	n, err := t.count("N")
	if err != nil {
		return nil, err
	}
	m, err := t.count("M")
	if err != nil {
		return nil, err
	}
	x, err := t.next("X")
	if err != nil {
		return nil, err
	}
	y, err := t.next("Y")
	if err != nil {
		return nil, err
	}
	rs, err := t.pairs(m)
	if err != nil {
		return nil, err
	}
	return &RoadQuery{Nodes: n, X: x, Y: y, Roads: rs}, nil
}

// Graph builds the road network described by q.
func (q *RoadQuery) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	return buildGraph(q.Nodes, q.Roads, opts...)
}

// WriteRoadResult writes "-1" for an infeasible result, otherwise the pair
// count and one "a b" line per pair.
func WriteRoadResult(w io.Writer, res *roads.Result) error {
	bw := bufio.NewWriter(w)
	if !res.Feasible() {
		fmt.Fprintln(bw, -1)
		return bw.Flush()
	}
	fmt.Fprintln(bw, len(res.Pairs))
	for _, p := range res.Pairs {
		fmt.Fprintf(bw, "%d %d\n", p.A, p.B)
	}
	return bw.Flush()
}

// buildGraph creates an n-node graph and inserts rs in order.
func buildGraph(n int, rs [][2]int, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	for k, r := range rs {
		if err := g.AddEdge(r[0], r[1]); err != nil {
			return nil, fmt.Errorf("%w: road %d: %v", ErrMalformedInput, k+1, err)
		}
	}
	return g, nil
}
