// Package matcher implements the VF2-family graph and subgraph isomorphism
// engine: it decides whether two graphs are structurally identical, whether a
// pattern occurs as a (sub)structure inside a target, and it enumerates every
// such mapping lazily.
//
// What the engine does:
//
//   - Full isomorphism (ModeIsomorphism): total adjacency-preserving bijection
//     between equal-sized graphs.
//   - Induced subgraph isomorphism (ModeInducedSubgraph): the pattern maps
//     onto an induced subgraph of the target — no extra target edges between
//     mapped nodes are tolerated.
//   - Non-induced subgraph isomorphism / monomorphism (ModeSubgraph): pattern
//     edges must exist in the target, extra target edges are tolerated.
//   - Undirected, directed and multigraph variants, selected automatically
//     from the GraphView capability flags.
//   - Attribute-constrained matching via user comparators (NodeMatch /
//     EdgeMatch), including numeric-tolerance variants for weighted graphs
//     (WeightEdgeMatch, RelativeWeightEdgeMatch).
//
// How it prunes (the VF2 discipline):
//
//   - Candidate pairs are restricted to the frontier sets T1/T2 (directed:
//     Tin/Tout splits) — unmapped nodes adjacent to the partial mapping.
//   - Syntactic feasibility: degree compatibility, mapped-neighbor edge and
//     multiplicity consistency, self-loop consistency, and the look-ahead
//     count pruning that rejects a pair before recursing.
//   - Semantic feasibility: user comparators run only after the cheap
//     structural checks pass; comparator panics abort the search with
//     ErrComparator.
//   - Optional VF2++-style static ordering (WithStaticOrder): a
//     connectivity+degeneracy visiting order over pattern nodes computed once
//     up front, on by default for the subgraph modes.
//
// Usage:
//
//	pv, _ := matcher.NewCoreView(pattern)
//	tv, _ := matcher.NewCoreView(target)
//
//	ok, err := matcher.IsIsomorphic(pv, tv)                  // boolean query
//	ok, err = matcher.SubgraphIsIsomorphic(pv, tv)           // induced
//	ok, err = matcher.SubgraphIsIsomorphic(pv, tv,
//	    matcher.WithMode(matcher.ModeSubgraph))              // monomorphism
//
//	m, err := matcher.NewMatcher(pv, tv,
//	    matcher.WithMode(matcher.ModeInducedSubgraph),
//	    matcher.WithNodeMatch(matcher.CategoricalNodeMatch("element")),
//	    matcher.WithContext(ctx))
//	for {
//	    mapping, err := m.Next() // lazy: one result per pull
//	    if err != nil || mapping == nil {
//	        break // aborted or exhausted
//	    }
//	    _ = mapping.AsMap()
//	}
//
// Results and termination:
//
//   - Next() returns (mapping, nil) per result, (nil, nil) on proven
//     exhaustion, or (nil, err) when aborted — ErrComparator for comparator
//     failures, ErrCancelled (wrapping the context error) for cancellation,
//     so "gave up" is distinguishable from "proven impossible".
//   - Enumeration order is deterministic: node IDs are indexed in ascending
//     order and every tie is broken toward the smallest index.
//   - Worst-case running time is exponential in node count (pathological
//     highly symmetric inputs); bound long searches with WithContext.
//
// Concurrency: a Matcher owns its mutable search state exclusively. Distinct
// Matcher instances may run in parallel over shared, read-only GraphViews.
// A single instance is reusable sequentially via Reset().
package matcher
