package core_test

import (
	"testing"

	"github.com/katalvlaran/landmarks/core"
)

func buildChain(b *testing.B, n int, opts ...core.GraphOption) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			b.Fatal(err)
		}
	}
	return g
}

// BenchmarkHasEdge_Scan measures the linear neighbor-list scan over all pairs.
func BenchmarkHasEdge_Scan(b *testing.B) {
	const n = 300
	g := buildChain(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				_ = g.HasEdge(i, j)
			}
		}
	}
}

// BenchmarkHasEdge_Indexed measures the same pair loop with WithEdgeIndex.
func BenchmarkHasEdge_Indexed(b *testing.B) {
	const n = 300
	g := buildChain(b, n, core.WithEdgeIndex())
	b.ReportAllocs()
	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				_ = g.HasEdge(i, j)
			}
		}
	}
}
