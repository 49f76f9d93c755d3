// File: feasibility.go
// Role: Pure predicate layer: syntactic feasibility (degree, mapped-neighbor
//       consistency with multiplicity, self-loops, orientation, look-ahead)
//       and semantic feasibility (user comparators, guarded against panics).
// Order:
//   - Syntactic checks run first; attribute comparison is user code and
//     assumed the most expensive step.
package matcher

import "fmt"

// syntacticFeasible applies the structure-only rules to a candidate pair.
func syntacticFeasible(s *matchState, a, b int, mode Mode) bool {
	if !degreeFeasible(s, a, b, mode) {
		return false
	}
	if !loopFeasible(s, a, b, mode) {
		return false
	}
	if !neighborFeasible(s, a, b, mode) {
		return false
	}
	if mode == ModeSubgraph {
		// Frontier counts are not a sound bound when extra target edges are
		// tolerated; the look-ahead applies to exact modes only.
		return true
	}

	return lookaheadFeasible(s, a, b, mode)
}

// degreeFeasible compares total (and directed split) degrees: equality for
// full isomorphism, pattern <= target for subgraph modes.
func degreeFeasible(s *matchState, a, b int, mode Mode) bool {
	if mode == ModeIsomorphism {
		if s.directed {
			return s.idx1.inDeg[a] == s.idx2.inDeg[b] && s.idx1.outDeg[a] == s.idx2.outDeg[b]
		}

		return s.idx1.deg[a] == s.idx2.deg[b]
	}
	if s.directed {
		return s.idx1.inDeg[a] <= s.idx2.inDeg[b] && s.idx1.outDeg[a] <= s.idx2.outDeg[b]
	}

	return s.idx1.deg[a] <= s.idx2.deg[b]
}

// loopFeasible compares self-loop multiplicities: exact for full/induced,
// pattern <= target for non-induced.
func loopFeasible(s *matchState, a, b int, mode Mode) bool {
	la, lb := s.idx1.loops[a], s.idx2.loops[b]
	if mode == ModeSubgraph {
		return la <= lb
	}

	return la == lb
}

// neighborFeasible enforces mapped-neighbor consistency: every pattern edge
// between a and a mapped neighbor must exist in the target with compatible
// multiplicity, and (exact modes only) every target edge between b and a
// mapped neighbor must have a pattern counterpart.
func neighborFeasible(s *matchState, a, b int, mode Mode) bool {
	exact := mode != ModeSubgraph

	if s.directed {
		if !forwardEdges(s.idx1, s.idx2, s.coreP, a, b, exact, false) {
			return false
		}
		if !forwardEdges(s.idx1, s.idx2, s.coreP, a, b, exact, true) {
			return false
		}
		if exact {
			if !backwardEdges(s.idx1, s.idx2, s.coreT, a, b, false) {
				return false
			}
			if !backwardEdges(s.idx1, s.idx2, s.coreT, a, b, true) {
				return false
			}
		}

		return true
	}

	if !forwardEdges(s.idx1, s.idx2, s.coreP, a, b, exact, false) {
		return false
	}
	if exact && !backwardEdges(s.idx1, s.idx2, s.coreT, a, b, false) {
		return false
	}

	return true
}

// forwardEdges walks a's mapped neighborhood (successors, or predecessors when
// reverse is set) and checks the corresponding target edges.
func forwardEdges(idx1, idx2 *graphIndex, coreP []int, a, b int, exact, reverse bool) bool {
	neighbors := idx1.succ[a]
	if reverse {
		neighbors = idx1.pred[a]
	}
	var n, m, mp, mt int
	for _, n = range neighbors {
		m = coreP[n]
		if m == unmapped {
			continue
		}
		if reverse {
			mp = idx1.multiplicity(n, a)
			mt = idx2.multiplicity(m, b)
		} else {
			mp = idx1.multiplicity(a, n)
			mt = idx2.multiplicity(b, m)
		}
		if exact {
			if mp != mt {
				return false
			}
		} else if mp > mt {
			return false
		}
	}

	return true
}

// backwardEdges walks b's mapped neighborhood and requires equal multiplicity
// on the pattern side; this is the second-direction check that defines
// induced semantics (extra target edges among mapped nodes are rejected).
func backwardEdges(idx1, idx2 *graphIndex, coreT []int, a, b int, reverse bool) bool {
	neighbors := idx2.succ[b]
	if reverse {
		neighbors = idx2.pred[b]
	}
	var n, p, mp, mt int
	for _, n = range neighbors {
		p = coreT[n]
		if p == unmapped {
			continue
		}
		if reverse {
			mt = idx2.multiplicity(n, b)
			mp = idx1.multiplicity(p, a)
		} else {
			mt = idx2.multiplicity(b, n)
			mp = idx1.multiplicity(a, p)
		}
		if mp != mt {
			return false
		}
	}

	return true
}

// lookaheadFeasible counts a's unmapped neighbors inside the frontier(s)
// versus entirely outside, and requires the target to supply at least as many
// in each category (exactly as many for full isomorphism). This turns a late
// failure into an immediate rejection.
func lookaheadFeasible(s *matchState, a, b int, mode Mode) bool {
	eq := mode == ModeIsomorphism

	if !s.directed {
		termA, freshA := frontierCounts(s.idx1.succ[a], s.coreP, s.t1, nil)
		termB, freshB := frontierCounts(s.idx2.succ[b], s.coreT, s.t2, nil)

		return compareCounts(termA, termB, eq) && compareCounts(freshA, freshB, eq)
	}

	// Directed: the four frontier categories are checked independently for
	// both the in- and out-neighborhood, plus the fresh (no-frontier) counts.
	for _, side := range [2]bool{false, true} {
		nA := s.idx1.succ[a]
		nB := s.idx2.succ[b]
		if side {
			nA = s.idx1.pred[a]
			nB = s.idx2.pred[b]
		}

		inA, _ := frontierCounts(nA, s.coreP, s.tin1, nil)
		inB, _ := frontierCounts(nB, s.coreT, s.tin2, nil)
		if !compareCounts(inA, inB, eq) {
			return false
		}

		outA, _ := frontierCounts(nA, s.coreP, s.tout1, nil)
		outB, _ := frontierCounts(nB, s.coreT, s.tout2, nil)
		if !compareCounts(outA, outB, eq) {
			return false
		}

		_, freshA := frontierCounts(nA, s.coreP, s.tin1, s.tout1)
		_, freshB := frontierCounts(nB, s.coreT, s.tin2, s.tout2)
		if !compareCounts(freshA, freshB, eq) {
			return false
		}
	}

	return true
}

// frontierCounts partitions a neighbor list into frontier members (in s1 or
// s2) and fresh nodes (unmapped, in neither). Mapped neighbors are skipped.
func frontierCounts(neighbors []int, core []int, s1, s2 frontierSet) (term, fresh int) {
	var n int
	for _, n = range neighbors {
		if core[n] != unmapped {
			continue
		}
		if s1.Contains(n) || (s2 != nil && s2.Contains(n)) {
			term++
		} else {
			fresh++
		}
	}

	return term, fresh
}

// frontierSet is the membership slice of the treeset API used by the counts.
type frontierSet interface {
	Contains(items ...interface{}) bool
}

// compareCounts applies the mode-specific comparison: equality for full
// isomorphism, target >= pattern for induced subgraph matching.
func compareCounts(pattern, target int, eq bool) bool {
	if eq {
		return pattern == target
	}

	return pattern <= target
}

// semanticFeasible applies the user comparators to a candidate pair. Any
// comparator panic aborts the search with ErrComparator.
func (m *Matcher) semanticFeasible(a, b int) (bool, error) {
	s := m.st

	if m.opts.NodeMatch != nil {
		ok, err := m.safeNodeMatch(
			m.idx1.view.VertexAttrs(m.idx1.ids[a]),
			m.idx2.view.VertexAttrs(m.idx2.ids[b]),
		)
		if err != nil || !ok {
			return false, err
		}
	}

	if m.opts.EdgeMatch == nil {
		return true, nil
	}
	exact := m.mode != ModeSubgraph

	// Self-loop attribute sets.
	if m.idx1.loops[a] > 0 {
		ok, err := m.safeEdgeSets(
			m.idx1.view.EdgeAttrs(m.idx1.ids[a], m.idx1.ids[a]),
			m.idx2.view.EdgeAttrs(m.idx2.ids[b], m.idx2.ids[b]),
			exact,
		)
		if err != nil || !ok {
			return false, err
		}
	}

	// Pattern edges toward mapped neighbors; orientation-split for directed
	// graphs. Only pattern edges need semantic counterparts: in exact modes
	// the syntactic layer already guarantees target edges have pattern twins.
	var n, mb int
	for _, n = range m.idx1.succ[a] {
		mb = s.coreP[n]
		if mb == unmapped {
			continue
		}
		ok, err := m.safeEdgeSets(
			m.idx1.view.EdgeAttrs(m.idx1.ids[a], m.idx1.ids[n]),
			m.idx2.view.EdgeAttrs(m.idx2.ids[b], m.idx2.ids[mb]),
			exact,
		)
		if err != nil || !ok {
			return false, err
		}
	}
	if m.idx1.directed {
		for _, n = range m.idx1.pred[a] {
			mb = s.coreP[n]
			if mb == unmapped {
				continue
			}
			ok, err := m.safeEdgeSets(
				m.idx1.view.EdgeAttrs(m.idx1.ids[n], m.idx1.ids[a]),
				m.idx2.view.EdgeAttrs(m.idx2.ids[mb], m.idx2.ids[b]),
				exact,
			)
			if err != nil || !ok {
				return false, err
			}
		}
	}

	return true, nil
}

// safeNodeMatch invokes the node comparator with panic containment.
func (m *Matcher) safeNodeMatch(a, b map[string]interface{}) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: node comparator panicked: %v", ErrComparator, r)
		}
	}()

	return m.opts.NodeMatch(a, b), nil
}

// safeEdgeSets decides parallel-edge compatibility with panic containment:
// a pairwise bijection (injection in non-exact mode) between the two edge
// sets under the user comparator.
func (m *Matcher) safeEdgeSets(pa, tb []map[string]interface{}, exact bool) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: edge comparator panicked: %v", ErrComparator, r)
		}
	}()

	return edgeSetsCompatible(pa, tb, m.opts.EdgeMatch, exact), nil
}

// edgeSetsCompatible searches for an assignment of every pattern edge to a
// distinct compatible target edge. Parallel-edge sets are small, so an exact
// backtracking search replaces the greedy shortcut: greedy can reject pairs a
// perfect matching would accept.
func edgeSetsCompatible(pa, tb []map[string]interface{}, em EdgeMatch, exact bool) bool {
	if exact && len(pa) != len(tb) {
		return false
	}
	if len(pa) > len(tb) {
		return false
	}
	if len(pa) == 0 {
		return true
	}
	used := make([]bool, len(tb))

	return assignEdges(pa, tb, used, 0, em)
}

// assignEdges is the recursive core of edgeSetsCompatible.
func assignEdges(pa, tb []map[string]interface{}, used []bool, i int, em EdgeMatch) bool {
	if i == len(pa) {
		return true
	}
	var j int
	for j = range tb {
		if used[j] || !em(pa[i], tb[j]) {
			continue
		}
		used[j] = true
		if assignEdges(pa, tb, used, i+1, em) {
			return true
		}
		used[j] = false
	}

	return false
}
