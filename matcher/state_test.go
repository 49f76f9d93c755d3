// White-box tests of the backtracking state: the frontier invariant must hold
// after any extend/retract sequence, and retract must be an exact inverse.
package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomorph/core"
)

// indexOf builds a graphIndex over a core graph.
func indexOf(t *testing.T, g *core.Graph) *graphIndex {
	t.Helper()
	v, err := NewCoreView(g)
	require.NoError(t, err)
	return buildIndex(v)
}

// recomputeFrontier derives {unmapped nodes adjacent to a mapped node} from
// scratch, the ground truth the incremental sets must equal.
func recomputeFrontier(idx *graphIndex, core []int, useSucc bool) map[int]bool {
	out := make(map[int]bool)
	var u, n int
	for u = 0; u < idx.n; u++ {
		if core[u] == unmapped {
			continue
		}
		neighbors := idx.succ[u]
		if !useSucc {
			neighbors = idx.pred[u]
		}
		for _, n = range neighbors {
			if core[n] == unmapped {
				out[n] = true
			}
		}
	}

	return out
}

// assertFrontierEquals compares a treeset against the recomputed ground truth.
func assertFrontierEquals(t *testing.T, want map[int]bool, got []int, label string) {
	t.Helper()
	assert.Len(t, got, len(want), label)
	for _, v := range got {
		assert.True(t, want[v], "%s: unexpected member %d", label, v)
	}
}

func TestMatchState_FrontierInvariant_Undirected(t *testing.T) {
	// Square with a diagonal: 0-1-2-3-0 plus 0-2 (indexes follow sorted IDs).
	g := core.NewGraph()
	for _, p := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}, {"0", "2"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	idx := indexOf(t, g)
	s := newMatchState(idx, idx)

	// Extend a few pairs and validate the invariant after every step.
	steps := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	var deltas []delta
	for _, st := range steps {
		deltas = append(deltas, s.extend(st[0], st[1]))
		assertFrontierEquals(t, recomputeFrontier(idx, s.coreP, true), sortedMembers(s.t1), "t1")
		assertFrontierEquals(t, recomputeFrontier(idx, s.coreT, true), sortedMembers(s.t2), "t2")
	}

	// Retract everything; the invariant must hold at every intermediate
	// point and the final state must be pristine.
	for i := len(deltas) - 1; i >= 0; i-- {
		s.retract(deltas[i])
		assertFrontierEquals(t, recomputeFrontier(idx, s.coreP, true), sortedMembers(s.t1), "t1 after retract")
		assertFrontierEquals(t, recomputeFrontier(idx, s.coreT, true), sortedMembers(s.t2), "t2 after retract")
	}
	assert.Equal(t, 0, s.depth)
	assert.Equal(t, 0, s.t1.Size())
	assert.Equal(t, 0, s.t2.Size())
	for _, v := range s.coreP {
		assert.Equal(t, unmapped, v)
	}
}

func TestMatchState_FrontierInvariant_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}, {"0", "3"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	idx := indexOf(t, g)
	s := newMatchState(idx, idx)

	d1 := s.extend(0, 0)
	d2 := s.extend(1, 1)

	assertFrontierEquals(t, recomputeFrontier(idx, s.coreP, true), sortedMembers(s.tout1), "tout1")
	assertFrontierEquals(t, recomputeFrontier(idx, s.coreP, false), sortedMembers(s.tin1), "tin1")
	assertFrontierEquals(t, recomputeFrontier(idx, s.coreT, true), sortedMembers(s.tout2), "tout2")
	assertFrontierEquals(t, recomputeFrontier(idx, s.coreT, false), sortedMembers(s.tin2), "tin2")

	s.retract(d2)
	assertFrontierEquals(t, recomputeFrontier(idx, s.coreP, true), sortedMembers(s.tout1), "tout1 after retract")
	assertFrontierEquals(t, recomputeFrontier(idx, s.coreP, false), sortedMembers(s.tin1), "tin1 after retract")

	s.retract(d1)
	assert.Equal(t, 0, s.tout1.Size())
	assert.Equal(t, 0, s.tin1.Size())
}

func TestMatchState_ExtendRetractIsExactInverse(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	idx := indexOf(t, g)
	s := newMatchState(idx, idx)

	d0 := s.extend(0, 1)
	before1 := sortedMembers(s.t1)
	before2 := sortedMembers(s.t2)

	// A nested extend/retract round trip must leave the depth-1 state
	// untouched.
	d1 := s.extend(1, 0)
	s.retract(d1)
	assert.Equal(t, before1, sortedMembers(s.t1))
	assert.Equal(t, before2, sortedMembers(s.t2))
	assert.Equal(t, 1, s.depth)
	assert.Equal(t, 1, s.coreP[0])
	assert.Equal(t, unmapped, s.coreP[1])

	s.retract(d0)
	assert.Equal(t, 0, s.depth)
}
