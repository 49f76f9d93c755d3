// File: state.go
// Role: The mutable backtracking state: partial bijection plus frontier sets,
//       with an undo-log of value-type delta records.
// Invariants:
//   - coreP/coreT are injective in both directions at every point.
//   - Each frontier set equals exactly {unmapped nodes adjacent to a mapped
//     node} for its graph and orientation after any extend/retract sequence.
//   - retract(extend(d)) restores the state bit-for-bit; drift here corrupts
//     every later branch of the search.
// Determinism:
//   - Frontiers are red-black treesets with an int comparator, so in-order
//     iteration yields ascending internal indexes (= ascending node IDs).
package matcher

import "github.com/emirpasic/gods/sets/treeset"

// matchState is owned exclusively by one in-flight search.
type matchState struct {
	idx1, idx2 *graphIndex
	directed   bool
	depth      int

	coreP []int // pattern index → target index, unmapped when free
	coreT []int // target index → pattern index, unmapped when free

	// Undirected frontiers.
	t1, t2 *treeset.Set

	// Directed frontiers: tout holds unmapped successors of mapped nodes,
	// tin unmapped predecessors.
	tin1, tout1, tin2, tout2 *treeset.Set
}

// delta is the undo record of one extension. All fields are value types; a
// retract is an exact inverse replay.
type delta struct {
	a, b int

	// Prior frontier membership of the extended pair.
	aInT1, aInTin1, aInTout1 bool
	bInT2, bInTin2, bInTout2 bool

	// Frontier members added by this extension.
	addedT1, addedT2         []int
	addedTin1, addedTout1    []int
	addedTin2, addedTout2    []int
}

// newMatchState allocates the empty Start state for one pattern/target pair.
func newMatchState(idx1, idx2 *graphIndex) *matchState {
	s := &matchState{
		idx1:     idx1,
		idx2:     idx2,
		directed: idx1.directed,
		coreP:    make([]int, idx1.n),
		coreT:    make([]int, idx2.n),
	}
	var i int
	for i = range s.coreP {
		s.coreP[i] = unmapped
	}
	for i = range s.coreT {
		s.coreT[i] = unmapped
	}
	if s.directed {
		s.tin1 = treeset.NewWithIntComparator()
		s.tout1 = treeset.NewWithIntComparator()
		s.tin2 = treeset.NewWithIntComparator()
		s.tout2 = treeset.NewWithIntComparator()
	} else {
		s.t1 = treeset.NewWithIntComparator()
		s.t2 = treeset.NewWithIntComparator()
	}

	return s
}

// extend records the pair (a,b) into the bijection, patches the frontiers
// incrementally and returns the undo record.
func (s *matchState) extend(a, b int) delta {
	d := delta{a: a, b: b}

	s.coreP[a] = b
	s.coreT[b] = a
	s.depth++

	if s.directed {
		d.aInTin1 = removeIfPresent(s.tin1, a)
		d.aInTout1 = removeIfPresent(s.tout1, a)
		d.bInTin2 = removeIfPresent(s.tin2, b)
		d.bInTout2 = removeIfPresent(s.tout2, b)

		d.addedTout1 = addFrontier(s.tout1, s.idx1.succ[a], s.coreP)
		d.addedTin1 = addFrontier(s.tin1, s.idx1.pred[a], s.coreP)
		d.addedTout2 = addFrontier(s.tout2, s.idx2.succ[b], s.coreT)
		d.addedTin2 = addFrontier(s.tin2, s.idx2.pred[b], s.coreT)

		return d
	}

	d.aInT1 = removeIfPresent(s.t1, a)
	d.bInT2 = removeIfPresent(s.t2, b)
	d.addedT1 = addFrontier(s.t1, s.idx1.succ[a], s.coreP)
	d.addedT2 = addFrontier(s.t2, s.idx2.succ[b], s.coreT)

	return d
}

// retract undoes one extension exactly.
func (s *matchState) retract(d delta) {
	s.coreP[d.a] = unmapped
	s.coreT[d.b] = unmapped
	s.depth--

	if s.directed {
		removeAll(s.tout1, d.addedTout1)
		removeAll(s.tin1, d.addedTin1)
		removeAll(s.tout2, d.addedTout2)
		removeAll(s.tin2, d.addedTin2)

		if d.aInTin1 {
			s.tin1.Add(d.a)
		}
		if d.aInTout1 {
			s.tout1.Add(d.a)
		}
		if d.bInTin2 {
			s.tin2.Add(d.b)
		}
		if d.bInTout2 {
			s.tout2.Add(d.b)
		}

		return
	}

	removeAll(s.t1, d.addedT1)
	removeAll(s.t2, d.addedT2)
	if d.aInT1 {
		s.t1.Add(d.a)
	}
	if d.bInT2 {
		s.t2.Add(d.b)
	}
}

// mappedP reports whether a pattern node is already paired.
func (s *matchState) mappedP(a int) bool { return s.coreP[a] != unmapped }

// mappedT reports whether a target node is already paired.
func (s *matchState) mappedT(b int) bool { return s.coreT[b] != unmapped }

// removeIfPresent removes v and reports whether it was a member.
func removeIfPresent(set *treeset.Set, v int) bool {
	if !set.Contains(v) {
		return false
	}
	set.Remove(v)

	return true
}

// addFrontier inserts every unmapped neighbor not already in the set and
// returns the actually-added members (for exact undo).
func addFrontier(set *treeset.Set, neighbors []int, core []int) []int {
	var added []int
	var v int
	for _, v = range neighbors {
		if core[v] != unmapped || set.Contains(v) {
			continue
		}
		set.Add(v)
		added = append(added, v)
	}

	return added
}

// removeAll removes the listed members.
func removeAll(set *treeset.Set, members []int) {
	var v int
	for _, v = range members {
		set.Remove(v)
	}
}

// sortedMembers returns the set contents as ascending ints.
func sortedMembers(set *treeset.Set) []int {
	vals := set.Values()
	out := make([]int, len(vals))
	var i int
	for i = range vals {
		out[i] = vals[i].(int)
	}

	return out
}

// minMember returns the smallest member; callers must ensure the set is
// non-empty.
func minMember(set *treeset.Set) int {
	it := set.Iterator()
	it.Next()

	return it.Value().(int)
}
