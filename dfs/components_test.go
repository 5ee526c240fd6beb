package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmarks/dfs"
)

func TestComponents(t *testing.T) {
	// {1,2,5} {3,4} {6}
	g := buildGraph(t, 6, [2]int{5, 1}, [2]int{1, 2}, [2]int{3, 4})
	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 4}, {2, 3}, {5}}, comps)
}

func TestComponents_IgnoresMaxDepth(t *testing.T) {
	g := buildChain(t, 5)
	comps, err := dfs.Components(g, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, comps)
}

func TestComponents_NilAndCancelled(t *testing.T) {
	_, err := dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Components(buildChain(t, 3), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsForest(t *testing.T) {
	tree := buildGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
	ok, err := dfs.IsForest(tree)
	require.NoError(t, err)
	assert.True(t, ok)

	// a duplicated road is not a cycle
	dup := buildGraph(t, 3, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 3})
	ok, err = dfs.IsForest(dup)
	require.NoError(t, err)
	assert.True(t, ok)

	cyc := buildGraph(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1})
	ok, err = dfs.IsForest(cyc)
	require.NoError(t, err)
	assert.False(t, ok)
}
