// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmarks/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls against one
// hub landmark are safe and every spoke appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 2; i <= num+1; i++ {
		go func(label int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(1, label))
		}(i)
	}
	wg.Wait()

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders mixes HasEdge and Neighbors readers with a writer.
func TestConcurrentReaders(t *testing.T) {
	g, err := core.NewGraph(50, core.WithEdgeIndex())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i < 50; i++ {
			_ = g.AddEdge(i, i+1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 49; i++ {
			_ = g.HasEdge(i, i+1)
			_, _ = g.Neighbors(i)
		}
	}()
	wg.Wait()

	for i := 0; i < 49; i++ {
		require.True(t, g.HasEdge(i, i+1))
	}
}
