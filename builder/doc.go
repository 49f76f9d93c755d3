// SPDX-License-Identifier: MIT
//
// Package builder constructs deterministic graph fixtures on top of core:
// canonical topologies (paths, cycles, stars, wheels, complete and bipartite
// graphs, grids, Platonic solids) and seeded random families (sparse
// Erdős–Rényi, d-regular). The fixtures are the standard test and benchmark
// inputs for the matcher package, where regular and highly symmetric graphs
// exercise the worst cases of subgraph search.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs.
//   - Safety: constructors never panic; they return sentinel errors.
//     Validation panics are confined to option constructors (WithX...).
//
// Typical usage:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
//
//	r, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.RandomRegular(12, 3),
//	)
//
// Attribute-aware matching fixtures attach vertex metadata through
// WithVertexMetadata, which runs once per inserted vertex ID.
package builder
