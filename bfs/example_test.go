package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/landmarks/bfs"
	"github.com/katalvlaran/landmarks/core"
)

// ExampleDistances computes the DistanceVector from landmark 3 on the
// path 1-2-3-4-5 with an isolated sixth landmark.
func ExampleDistances() {
	g, _ := core.NewGraph(6)
	for i := 1; i < 5; i++ {
		_ = g.AddEdge(i, i+1)
	}

	// landmark 3 is index 2
	dist, err := bfs.Distances(g, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	fmt.Println("landmark 6 reachable?", dist.Reachable(5))
	// Output:
	// [2 1 0 1 2 -1]
	// landmark 6 reachable? false
}

// ExampleBFSResult_PathTo reconstructs the fewest-road route on a small grid.
func ExampleBFSResult_PathTo() {
	// 1─2─3
	// │   │
	// 4─5─6
	g, _ := core.NewGraph(6)
	for _, r := range [][2]int{{1, 2}, {2, 3}, {1, 4}, {4, 5}, {5, 6}, {3, 6}} {
		_ = g.AddEdge(r[0], r[1])
	}
	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(5)
	for i := range path {
		path[i]++ // back to labels
	}
	fmt.Println(path)
	// Output:
	// [1 2 3 6]
}
