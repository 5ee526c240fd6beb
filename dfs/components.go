// Package dfs: connected components of an undirected road network.
//
// Components launches a depth-first walk from every still-unvisited node in
// ascending index order, sharing one visitation state across launches, so
// each node is discovered exactly once.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V + E)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/landmarks/core"
)

// Components returns the connected components of g. Each component lists
// its 0-based node indices in ascending order; components are ordered by
// their smallest member. Context and OnVisit options apply; MaxDepth is ignored.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	dopts.MaxDepth = -1

	n := g.NodeCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res, stack: make([]frame, 0, n)}

	var comps [][]int
	for s := 0; s < n; s++ {
		if res.Visited[s] {
			continue
		}
		from := len(res.Order)
		if err := walker.traverse(s); err != nil {
			return nil, fmt.Errorf("dfs: Components: %w", err)
		}
		comp := append([]int(nil), res.Order[from:]...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsForest reports whether g contains no cycle, treating repeated roads
// between the same pair as one. A forest has exactly V - C distinct roads,
// where C is the number of connected components.
func IsForest(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}
	stats := g.Stats()

	return stats.DistinctEdges == stats.NodeCount-len(comps), nil
}
