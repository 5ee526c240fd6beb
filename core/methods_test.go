// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmarks/core"
)

func TestNewGraph_NodeCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		g, err := core.NewGraph(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrBadNodeCount, "n=%d", n)
	}

	g, err := core.NewGraph(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b int
		want error
	}{
		{"zero label", 0, 1, core.ErrLabelOutOfRange},
		{"above range", 1, 4, core.ErrLabelOutOfRange},
		{"negative", -2, 3, core.ErrLabelOutOfRange},
		{"self loop", 2, 2, core.ErrLoopNotAllowed},
		{"valid", 1, 3, nil},
		{"valid upper bound", 3, 2, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.a, tc.b)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// only the two valid inserts were recorded
	assert.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 2, V: 1}}, g.Edges())
}

func TestHasEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))

	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(5, 5))
}

// TestHasEdge_IndexMatchesScan checks that the edge index never changes an answer.
func TestHasEdge_IndexMatchesScan(t *testing.T) {
	const n = 12
	plain, err := core.NewGraph(n)
	require.NoError(t, err)
	indexed, err := core.NewGraph(n, core.WithEdgeIndex())
	require.NoError(t, err)
	require.True(t, indexed.Indexed())
	require.False(t, plain.Indexed())

	roads := [][2]int{{1, 2}, {2, 7}, {7, 12}, {3, 4}, {4, 3}, {10, 1}, {5, 6}}
	for _, r := range roads {
		require.NoError(t, plain.AddEdge(r[0], r[1]))
		require.NoError(t, indexed.AddEdge(r[0], r[1]))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, plain.HasEdge(i, j), indexed.HasEdge(i, j), "HasEdge(%d,%d)", i, j)
		}
	}
}

func TestIndexAndLabel(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	idx, err := g.Index(4)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	_, err = g.Index(5)
	assert.ErrorIs(t, err, core.ErrLabelOutOfRange)

	lbl, err := g.Label(0)
	require.NoError(t, err)
	assert.Equal(t, 1, lbl)
	_, err = g.Label(4)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.SortedNeighbors(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestClone_DeepCopy(t *testing.T) {
	g, err := core.NewGraph(4, core.WithEdgeIndex())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	c := g.Clone()
	require.NoError(t, c.AddEdge(3, 4))

	assert.Equal(t, 2, g.EdgeCount(), "source untouched by clone mutation")
	assert.Equal(t, 3, c.EdgeCount())
	assert.False(t, g.HasEdge(2, 3))
	assert.True(t, c.HasEdge(2, 3))
	assert.True(t, c.Indexed())

	orig, _ := g.Neighbors(1)
	cloned, _ := c.Neighbors(1)
	assert.Equal(t, orig, cloned)
}

func TestStats(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 3))

	s := g.Stats()
	assert.Equal(t, 5, s.NodeCount)
	assert.Equal(t, 3, s.EdgeCount)
	assert.Equal(t, 2, s.DistinctEdges)
	assert.Equal(t, 2, s.Isolated) // labels 4 and 5
	assert.Equal(t, 3, s.MaxDegree)
	assert.False(t, s.Indexed)
}
