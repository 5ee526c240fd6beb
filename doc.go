// Package landmarks models a city of landmarks joined by two-way roads and
// answers two questions about it.
//
// What is landmarks?
//
//	An in-memory toolkit built from small, focused packages:
//		• Road planning: which new roads keep the X–Y route as long as it is
//		• Spanning walk: can one depth-first walk reach every landmark, and in what order
//		• Traversals: BFS distance vectors, explicit-stack DFS, components
//		• Builders: paths, cycles, grids, wheels and seeded random networks
//		• Text and YAML formats, plus a command-line front end
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      — Graph over integer landmarks, thread-safe primitives, optional edge index
//	bfs/       — level-order distances with hooks and depth limits
//	dfs/       — pre-order walk with an explicit stack, connected components
//	roads/     — the road planner (Plan, CandidateDistance)
//	spanning/  — the spanning walk (Walk, ReferenceStart)
//	builder/   — deterministic topology constructors
//	cityio/    — plain-text query formats and YAML scenario files
//	cmd/landmarks — CLI: roads, walk, scenarios, stats
//
// Quick ASCII example:
//
//	1───2───3───4───5
//
//	roads.Plan(g, 3, 5) keeps the 3→5 route at two roads with
//	1–3, 1–4, 1–5, 2–4 or 2–5.
//
// See the package docs and example_test.go files for usage.
package landmarks
