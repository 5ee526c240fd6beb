package roads_test

import (
	"testing"

	"github.com/katalvlaran/landmarks/builder"
	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/roads"
)

func benchmarkPlan(b *testing.B, gopts ...core.GraphOption) {
	g, err := builder.BuildGraph(1000, gopts, nil, builder.Path(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = roads.Plan(g, 1, 1000)
	}
}

// BenchmarkPlan_Path1000 scans with linear neighbor lookups.
func BenchmarkPlan_Path1000(b *testing.B) { benchmarkPlan(b) }

// BenchmarkPlan_Path1000Indexed scans with the O(1) edge index.
func BenchmarkPlan_Path1000Indexed(b *testing.B) { benchmarkPlan(b, core.WithEdgeIndex()) }
