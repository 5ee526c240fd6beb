package cityio_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/landmarks/cityio"
	"github.com/katalvlaran/landmarks/roads"
)

// ScenarioSuite runs every case shipped in testdata/citytester.yaml.
type ScenarioSuite struct {
	suite.Suite
	scenarios []cityio.Scenario
}

func (s *ScenarioSuite) SetupSuite() {
	f, err := os.Open("testdata/citytester.yaml")
	s.Require().NoError(err)
	defer f.Close()

	s.scenarios, err = cityio.LoadScenarios(f)
	s.Require().NoError(err)
}

func (s *ScenarioSuite) TestLoaded() {
	s.Len(s.scenarios, 11)
	s.Equal("basic functionality", s.scenarios[0].Name)
	s.Equal(cityio.KindRoads, s.scenarios[0].Kind, "kind defaults to roads")
	s.Equal(cityio.KindWalk, s.scenarios[8].Kind)
}

func (s *ScenarioSuite) TestAllPass() {
	for i := range s.scenarios {
		sc := &s.scenarios[i]
		s.Run(sc.Name, func() {
			out, err := sc.Run(context.Background())
			s.Require().NoError(err)
			s.NoError(sc.Check(out))
		})
	}
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func TestLoadScenarios_UnknownField(t *testing.T) {
	_, err := cityio.LoadScenarios(strings.NewReader("scenarios:\n  - name: a\n    nodez: 3\n"))
	assert.Error(t, err)
}

func TestLoadScenarios_Empty(t *testing.T) {
	scs, err := cityio.LoadScenarios(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, scs)
}

func TestScenario_CheckReportsMismatch(t *testing.T) {
	count := 3
	sc := cityio.Scenario{
		Name: "wrong", Nodes: 5, X: 3, Y: 5,
		Roads:  [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}},
		Expect: cityio.Expect{Status: "NoValidPairs", Count: &count},
	}
	out, err := sc.Run(context.Background())
	require.NoError(t, err)

	err = sc.Check(out)
	assert.ErrorIs(t, err, cityio.ErrExpectationFailed)
	assert.ErrorContains(t, err, "status Feasible, want NoValidPairs")
	assert.ErrorContains(t, err, "count 5, want 3")
}

func TestScenario_BadInputs(t *testing.T) {
	cases := []cityio.Scenario{
		{Name: "generator", Kind: cityio.KindRoads, Nodes: 3, X: 1, Y: 2, Generator: &cityio.Generator{Kind: "spiral", N: 3}},
		{Name: "kind", Kind: "teleport", Nodes: 3},
		{Name: "mode", Kind: cityio.KindRoads, Nodes: 3, X: 1, Y: 2, Mode: "fast"},
		{Name: "too big", Kind: cityio.KindRoads, Nodes: 3, X: 1, Y: 2, Generator: &cityio.Generator{Kind: "path", N: 4}},
	}
	for _, sc := range cases {
		_, err := sc.Run(context.Background())
		assert.ErrorIs(t, err, cityio.ErrBadScenario, sc.Name)
	}
}

func TestScenario_RandomGeneratorIsSeeded(t *testing.T) {
	sc := cityio.Scenario{
		Name: "random", Kind: cityio.KindRoads, Nodes: 40, X: 1, Y: 40,
		Generator: &cityio.Generator{Kind: "random", N: 40, P: 0.1, Seed: 11},
	}
	a, err := sc.Graph()
	require.NoError(t, err)
	b, err := sc.Graph()
	require.NoError(t, err)
	if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
		t.Errorf("seeded generator differs (-a +b):\n%s", diff)
	}
}

// TestScenario_EmptyKindIsRoads runs a scenario built in code without a kind.
func TestScenario_EmptyKindIsRoads(t *testing.T) {
	sc := cityio.Scenario{Name: "no kind", Nodes: 5, X: 3, Y: 5, Roads: [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}}
	out, err := sc.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out.Roads)
	assert.Equal(t, roads.Feasible, out.Roads.Status)
	assert.Len(t, out.Roads.Pairs, 5)
}

func TestScenario_BipartiteGenerator(t *testing.T) {
	doc := `scenarios:
  - name: k23
    nodes: 5
    x: 1
    y: 2
    generator: {kind: bipartite, a: 2, b: 3}
    expect:
      status: Feasible
      pairs: [[3, 4], [3, 5], [4, 5]]
`
	scs, err := cityio.LoadScenarios(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, scs, 1)

	g, err := scs[0].Graph()
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	out, err := scs[0].Run(context.Background())
	require.NoError(t, err)
	assert.NoError(t, scs[0].Check(out))
}

func TestScenario_ExtraOptions(t *testing.T) {
	sc := cityio.Scenario{Name: "hook", Kind: cityio.KindRoads, Nodes: 4, X: 1, Y: 4, Roads: [][2]int{{1, 2}, {2, 3}, {3, 4}}}
	calls := 0
	_, err := sc.Run(context.Background(), roads.WithOnCandidate(func(roads.Candidate) { calls++ }))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}
