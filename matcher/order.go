// File: order.go
// Role: Candidate-pair generation (the dynamic VF2 frontier rule) and the
//       precomputed connectivity+degeneracy visiting order over pattern nodes.
// Determinism:
//   - The pattern node is always the smallest legal internal index; target
//     candidates are enumerated in ascending index order. Ascending index
//     equals ascending node ID, so enumeration order is reproducible.
package matcher

// nextCandidates proposes the pattern node to extend at the current depth and
// the ordered target candidates to try. An empty candidate slice is a proven
// dead end for this branch.
//
// Soundness of the frontier restriction: a pattern frontier node is adjacent
// to a mapped node through a pattern edge, and pattern edges must exist in the
// target in every mode, so its image must lie in the corresponding target
// frontier. When no pattern frontier exists (a new connected component
// starts), every unmapped target node is a legal image.
func (m *Matcher) nextCandidates() (int, []int) {
	s := m.st

	if m.order != nil {
		return m.orderedCandidates()
	}

	if !s.directed {
		if s.t1.Size() > 0 {
			if s.t2.Size() == 0 {
				return unmapped, nil
			}

			return minMember(s.t1), sortedMembers(s.t2)
		}

		return m.firstUnmappedP(), m.allUnmappedT()
	}

	if s.tout1.Size() > 0 {
		if s.tout2.Size() == 0 {
			return unmapped, nil
		}

		return minMember(s.tout1), sortedMembers(s.tout2)
	}
	if s.tin1.Size() > 0 {
		if s.tin2.Size() == 0 {
			return unmapped, nil
		}

		return minMember(s.tin1), sortedMembers(s.tin2)
	}

	return m.firstUnmappedP(), m.allUnmappedT()
}

// orderedCandidates fixes the pattern node from the static order and derives
// the target candidate set from that node's frontier membership.
func (m *Matcher) orderedCandidates() (int, []int) {
	s := m.st
	a := m.order[s.depth]

	if !s.directed {
		if s.t1.Contains(a) {
			return a, sortedMembers(s.t2)
		}

		return a, m.allUnmappedT()
	}

	if s.tout1.Contains(a) {
		return a, sortedMembers(s.tout2)
	}
	if s.tin1.Contains(a) {
		return a, sortedMembers(s.tin2)
	}

	return a, m.allUnmappedT()
}

// firstUnmappedP returns the smallest unmapped pattern index.
func (m *Matcher) firstUnmappedP() int {
	var a int
	for a = 0; a < m.idx1.n; a++ {
		if !m.st.mappedP(a) {
			return a
		}
	}

	return unmapped
}

// allUnmappedT returns every unmapped target index, ascending.
func (m *Matcher) allUnmappedT() []int {
	out := make([]int, 0, m.idx2.n-m.st.depth)
	var b int
	for b = 0; b < m.idx2.n; b++ {
		if !m.st.mappedT(b) {
			out = append(out, b)
		}
	}

	return out
}

// staticOrder computes the connectivity+degeneracy visiting order over the
// pattern: repeatedly pick the unvisited node with the maximum number of
// already-visited neighbors, tie-broken by maximum degree, then by minimum
// index. Each matched node is thereby maximally constrained by prior choices;
// the order is computed once per matcher and reused at every depth.
func staticOrder(idx *graphIndex) []int {
	n := idx.n
	order := make([]int, 0, n)
	visited := make([]bool, n)
	connectivity := make([]int, n) // number of visited neighbors per node

	var step, cand, best, a int
	for step = 0; step < n; step++ {
		best = unmapped
		for cand = 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			if best == unmapped || betterOrderNode(idx, connectivity, cand, best) {
				best = cand
			}
		}

		order = append(order, best)
		visited[best] = true
		for _, a = range idx.succ[best] {
			connectivity[a]++
		}
		if idx.directed {
			for _, a = range idx.pred[best] {
				connectivity[a]++
			}
		}
	}

	return order
}

// betterOrderNode reports whether cand should be visited before best.
func betterOrderNode(idx *graphIndex, connectivity []int, cand, best int) bool {
	if connectivity[cand] != connectivity[best] {
		return connectivity[cand] > connectivity[best]
	}
	if idx.deg[cand] != idx.deg[best] {
		return idx.deg[cand] > idx.deg[best]
	}

	return cand < best
}
