// Package isomorph answers one question in all of its classical variants:
// does this graph occur inside that one?
//
// 🚀 What is isomorph?
//
//	A thread-safe, deterministic library for exact graph matching:
//		• Full isomorphism — are two graphs structurally identical?
//		• Induced subgraph isomorphism — does a pattern occur as an induced piece of a target?
//		• Non-induced (monomorphism) — are the pattern's edges all present in the target?
//		• Attribute-constrained matching — node/edge comparators, with numeric tolerances
//		  for weighted graphs
//		• Lazy enumeration of every valid mapping, with cooperative cancellation
//
// ✨ Why choose isomorph?
//
//   - VF2-family engine — frontier pruning plus the VF2++ static ordering heuristic
//   - Deterministic — identical inputs enumerate identical mappings in identical order
//   - Rock-solid guarantees — read-only over inputs, exclusive per-search state, no locks needed
//   - Pure Go — no cgo, a minimal dependency surface
//
// Everything is organized under three subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matcher/ — the VF2-family engine: GraphView, feasibility rules, lazy mapping iterator
//	builder/ — deterministic topology constructors for fixtures, benchmarks and examples
//
// Quick ASCII example:
//
//	    pattern        target
//	    A───B          1───2
//	        │          │   │
//	        C          4───3
//
//	the 3-vertex path occurs in the square: matcher.SubgraphIsIsomorphic → true.
//
// Dive into matcher/doc.go for the full algorithm notes, feasibility rules and
// complexity discussion.
//
//	go get github.com/katalvlaran/isomorph
package isomorph
