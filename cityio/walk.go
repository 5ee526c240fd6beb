// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: spanning walk query reader and result writer.

package cityio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/spanning"
)

// WalkQuery is one spanning walk input.
type WalkQuery struct {
	Nodes int
	Roads [][2]int
}

// ReadWalkQuery parses "M N" followed by N pairs.
func ReadWalkQuery(r io.Reader) (*WalkQuery, error) {
	t := newTokens(r)
	m, err := t.count("M")
	if err != nil {
		return nil, err
	}
	n, err := t.count("N")
	if err != nil {
		return nil, err
	}
	rs, err := t.pairs(n)
	if err != nil {
		return nil, err
	}
	return &WalkQuery{Nodes: m, Roads: rs}, nil
}

// Graph builds the road network described by q.
func (q *WalkQuery) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	return buildGraph(q.Nodes, q.Roads, opts...)
}

// WriteWalkResult writes "-1" for a disconnected network, otherwise the move
// count and the visit order with a space after every label.
func WriteWalkResult(w io.Writer, res *spanning.Result) error {
	bw := bufio.NewWriter(w)
	if !res.Connected {
		fmt.Fprintln(bw, -1)
		return bw.Flush()
	}
	fmt.Fprintln(bw, res.Moves)
	for _, l := range res.Order {
		fmt.Fprintf(bw, "%d ", l)
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
