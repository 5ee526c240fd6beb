package cityio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmarks/cityio"
	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/roads"
	"github.com/katalvlaran/landmarks/spanning"
)

func TestRoadQuery_RoundTrip(t *testing.T) {
	in := "5 4 3 5\n1 2\n2 3\n3 4\n4 5\n"
	q, err := cityio.ReadRoadQuery(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, &cityio.RoadQuery{Nodes: 5, X: 3, Y: 5, Roads: [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}}, q)

	g, err := q.Graph()
	require.NoError(t, err)
	res, err := roads.Plan(g, q.X, q.Y)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cityio.WriteRoadResult(&out, res))
	assert.Equal(t, "5\n1 3\n1 4\n1 5\n2 4\n2 5\n", out.String())
}

func TestRoadQuery_FreeWhitespace(t *testing.T) {
	q, err := cityio.ReadRoadQuery(strings.NewReader("  2 1\t1\n\n2 1 2"))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}}, q.Roads)
}

func TestWriteRoadResult_Infeasible(t *testing.T) {
	for _, st := range []roads.Status{roads.NoInitialPath, roads.NoValidPairs} {
		var out bytes.Buffer
		require.NoError(t, cityio.WriteRoadResult(&out, &roads.Result{Status: st}))
		assert.Equal(t, "-1\n", out.String())
	}
}

func TestReadRoadQuery_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"short header":   "5 4 3",
		"missing roads":  "5 2 1 2\n1 2\n",
		"not a number":   "5 1 1 x\n1 2",
		"negative count": "5 -1 1 2",
		"dangling end":   "3 1 1 2\n1",
	}
	for name, in := range cases {
		_, err := cityio.ReadRoadQuery(strings.NewReader(in))
		assert.ErrorIs(t, err, cityio.ErrMalformedInput, name)
	}
}

func TestQuery_GraphRejectsBadRoads(t *testing.T) {
	q := &cityio.RoadQuery{Nodes: 3, X: 1, Y: 2, Roads: [][2]int{{1, 4}}}
	_, err := q.Graph()
	assert.ErrorIs(t, err, cityio.ErrMalformedInput)
	assert.ErrorContains(t, err, "road 1")

	w := &cityio.WalkQuery{Nodes: 0}
	_, err = w.Graph()
	assert.ErrorIs(t, err, cityio.ErrMalformedInput)
}

func TestWalkQuery_RoundTrip(t *testing.T) {
	q, err := cityio.ReadWalkQuery(strings.NewReader("4 3\n1 3\n3 2\n3 4\n"))
	require.NoError(t, err)
	g, err := q.Graph(core.WithEdgeIndex())
	require.NoError(t, err)

	res, err := spanning.Walk(g, spanning.ReferenceStart)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cityio.WriteWalkResult(&out, res))
	assert.Equal(t, "3\n3 1 2 4 \n", out.String())
}

func TestWriteWalkResult_Disconnected(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cityio.WriteWalkResult(&out, &spanning.Result{Connected: false, Order: []int{3, 4}}))
	assert.Equal(t, "-1\n", out.String())
}

func TestReadWalkQuery_Malformed(t *testing.T) {
	_, err := cityio.ReadWalkQuery(strings.NewReader("4 2\n1 2\n"))
	assert.ErrorIs(t, err, cityio.ErrMalformedInput)
	assert.ErrorContains(t, err, "road 2 start")
}
