// Package builder provides deterministic constructors for landmark road
// networks, used to feed tests, benchmarks and scenario files.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:  create an n-node core.Graph and run constructors in order.
//     – Apply:       run constructors against an existing graph.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithOffset.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Complete, Star, Wheel, Grid, CompleteBipartite.
//     – RandomSparse: Erdős–Rényi-like sampling, requires WithSeed/WithRand.
//
// Every constructor lays out its nodes on labels offset+1 … offset+n, so
// disjoint components are composed by running several constructors with
// different WithOffset values:
//
//	g, _ := core.NewGraph(4)
//	_ = builder.Apply(g, nil, builder.Path(2))
//	_ = builder.Apply(g, []builder.BuilderOption{builder.WithOffset(2)}, builder.Path(2))
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Runtime parameter problems are reported as wrapped sentinel errors
//     (ErrTooFewVertices, ErrGraphTooSmall, ErrInvalidProbability, ErrNeedRandSource).
//   - Same inputs, options and seed ⇒ identical road lists in identical order.
package builder
