// SPDX-License-Identifier: MIT
//
// File: scenario.go
// Role: YAML scenario files: load, build, run and check.
//
// A scenario either lists its roads or names a builder generator. Kind
// "roads" (default) runs the road planner between X and Y; kind "walk" runs
// the spanning walk from Start (ReferenceStart when zero).

package cityio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/landmarks/builder"
	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/roads"
	"github.com/katalvlaran/landmarks/spanning"
)

// Scenario kinds.
const (
	KindRoads = "roads"
	KindWalk  = "walk"
)

var (
	// ErrBadScenario indicates a scenario that cannot be built or run.
	ErrBadScenario = errors.New("cityio: bad scenario")

	// ErrExpectationFailed indicates an outcome that differs from the expectation.
	ErrExpectationFailed = errors.New("cityio: expectation failed")
)

// Generator names a builder topology used instead of an explicit road list.
type Generator struct {
	Kind string  `yaml:"kind"` // path, cycle, complete, star, wheel, grid, bipartite, random
	N    int     `yaml:"n"`
	Rows int     `yaml:"rows"`
	Cols int     `yaml:"cols"`
	A    int     `yaml:"a"` // bipartite left side
	B    int     `yaml:"b"` // bipartite right side
	P    float64 `yaml:"p"`
	Seed int64   `yaml:"seed"`
}

// constructor maps g onto a builder.Constructor.
func (g *Generator) constructor() (builder.Constructor, error) {
	switch g.Kind {
	case "path":
		return builder.Path(g.N), nil
	case "cycle":
		return builder.Cycle(g.N), nil
	case "complete":
		return builder.Complete(g.N), nil
	case "star":
		return builder.Star(g.N), nil
	case "wheel":
		return builder.Wheel(g.N), nil
	case "grid":
		return builder.Grid(g.Rows, g.Cols), nil
	case "bipartite":
		return builder.CompleteBipartite(g.A, g.B), nil
	case "random":
		return builder.RandomSparse(g.N, g.P), nil
	default:
		return nil, fmt.Errorf("%w: unknown generator %q", ErrBadScenario, g.Kind)
	}
}

// Expect holds the checked parts of an outcome. Nil fields are not checked.
type Expect struct {
	Status    string   `yaml:"status"` // Feasible, NoInitialPath, NoValidPairs
	Count     *int     `yaml:"count"`
	Pairs     [][2]int `yaml:"pairs"`
	Connected *bool    `yaml:"connected"`
	Moves     *int     `yaml:"moves"`
	Order     []int    `yaml:"order"`
	Output    string   `yaml:"output"` // exact text rendering
}

// Scenario is one named test case.
type Scenario struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`
	Nodes     int        `yaml:"nodes"`
	X         int        `yaml:"x"`
	Y         int        `yaml:"y"`
	Start     int        `yaml:"start"`
	Mode      string     `yaml:"mode"`
	Indexed   bool       `yaml:"indexed"`
	Roads     [][2]int   `yaml:"roads"`
	Generator *Generator `yaml:"generator"`
	Expect    Expect     `yaml:"expect"`
}

// ScenarioFile is the document root.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios decodes a scenario file. Unknown fields are rejected.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f ScenarioFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("cityio: decode scenarios: %w", err)
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Kind == "" {
			s.Kind = KindRoads
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return f.Scenarios, nil
}

// Graph builds the scenario's road network: explicit roads first, then the generator.
func (s *Scenario) Graph() (*core.Graph, error) {
	var gopts []core.GraphOption
	if s.Indexed {
		gopts = append(gopts, core.WithEdgeIndex())
	}
	g, err := buildGraph(s.Nodes, s.Roads, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	if s.Generator == nil {
		return g, nil
	}

	cons, err := s.Generator.constructor()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	var bopts []builder.BuilderOption
	if s.Generator.Kind == "random" {
		bopts = append(bopts, builder.WithSeed(s.Generator.Seed))
	}
	if err := builder.Apply(g, bopts, cons); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.Name, ErrBadScenario, err)
	}
	return g, nil
}

// Outcome is the result of running a scenario; exactly one field is set.
type Outcome struct {
	Roads *roads.Result
	Walk  *spanning.Result
}

// Render writes the outcome in the plain-text output format.
func (o *Outcome) Render(w io.Writer) error {
	if o.Walk != nil {
		return WriteWalkResult(w, o.Walk)
	}
	return WriteRoadResult(w, o.Roads)
}

// Run builds the graph and runs the scenario. extra options are appended
// after those derived from the scenario itself.
func (s *Scenario) Run(ctx context.Context, extra ...roads.Option) (*Outcome, error) {
	g, err := s.Graph()
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case KindRoads, "":
		mode, err := roads.ParseMode(s.Mode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", s.Name, ErrBadScenario, err)
		}
		opts := append([]roads.Option{roads.WithContext(ctx), roads.WithMode(mode)}, extra...)
		res, err := roads.Plan(g, s.X, s.Y, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		return &Outcome{Roads: res}, nil

	case KindWalk:
		start := s.Start
		if start == 0 {
			start = spanning.ReferenceStart
		}
		res, err := spanning.Walk(g, start, spanning.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		return &Outcome{Walk: res}, nil

	default:
		return nil, fmt.Errorf("%s: %w: unknown kind %q", s.Name, ErrBadScenario, s.Kind)
	}
}

// Check compares out against the scenario's expectations and returns an
// ErrExpectationFailed listing every mismatch.
func (s *Scenario) Check(out *Outcome) error {
	var bad []string
	e := s.Expect

	if r := out.Roads; r != nil {
		if e.Status != "" && e.Status != r.Status.String() {
			bad = append(bad, fmt.Sprintf("status %s, want %s", r.Status, e.Status))
		}
		if e.Count != nil && *e.Count != len(r.Pairs) {
			bad = append(bad, fmt.Sprintf("count %d, want %d", len(r.Pairs), *e.Count))
		}
		if e.Pairs != nil && !samePairs(e.Pairs, r.Pairs) {
			bad = append(bad, fmt.Sprintf("pairs %v, want %v", r.Pairs, e.Pairs))
		}
	}
	if w := out.Walk; w != nil {
		if e.Connected != nil && *e.Connected != w.Connected {
			bad = append(bad, fmt.Sprintf("connected %t, want %t", w.Connected, *e.Connected))
		}
		if e.Moves != nil && *e.Moves != w.Moves {
			bad = append(bad, fmt.Sprintf("moves %d, want %d", w.Moves, *e.Moves))
		}
		if e.Order != nil && !sameInts(e.Order, w.Order) {
			bad = append(bad, fmt.Sprintf("order %v, want %v", w.Order, e.Order))
		}
	}
	if e.Output != "" {
		var sb strings.Builder
		if err := out.Render(&sb); err != nil {
			return err
		}
		if sb.String() != e.Output {
			bad = append(bad, fmt.Sprintf("output %q, want %q", sb.String(), e.Output))
		}
	}

	if len(bad) > 0 {
		return fmt.Errorf("%s: %w: %s", s.Name, ErrExpectationFailed, strings.Join(bad, "; "))
	}
	return nil
}

func samePairs(want [][2]int, got []roads.Pair) bool {
	if len(want) != len(got) {
		return false
	}
	for i, p := range got {
		if want[i] != [2]int{p.A, p.B} {
			return false
		}
	}
	return true
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
