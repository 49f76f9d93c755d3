// Package core_test verifies core.Graph method-level contracts:
// vertex/edge lifecycle, constraint enforcement, attribute storage,
// neighborhood queries over both adjacency indexes, and deterministic ordering.
package core_test

import (
	"testing"

	"github.com/katalvlaran/isomorph/core"
)

// TestGraph_AddRemoveVertex locks in AddVertex/HasVertex/RemoveVertex rules:
// empty-ID rejection, idempotent insert, sentinel on missing removal.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")

	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustTrue(t, g.HasVertex(VertexA), "HasVertex(A) after AddVertex")

	// Duplicate insert is a no-op.
	before := g.VertexCount()
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A) duplicate")
	MustEqualInt(t, g.VertexCount(), before, "duplicate AddVertex must not change count")

	MustErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID, "RemoveVertex(empty)")
	MustErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound, "RemoveVertex(missing)")

	MustNoError(t, g.RemoveVertex(VertexA), "RemoveVertex(A)")
	MustFalse(t, g.HasVertex(VertexA), "HasVertex(A) after RemoveVertex")
}

// TestGraph_AddEdgeConstraints verifies sentinel mapping for weights, loops
// and multi-edges.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	// Unweighted graph rejects non-zero weight.
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, Weight5)
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge(A,B,5) on unweighted graph")

	// Weighted graph accepts it.
	gw := core.NewGraph(core.WithWeighted())
	eid, err := gw.AddEdge(VertexA, VertexB, Weight5)
	MustNoError(t, err, "AddEdge(A,B,5) on weighted graph")
	MustNonEmptyString(t, eid, "edge ID must be generated")

	// Loops disabled by default.
	_, err = gw.AddEdge(VertexA, VertexA, Weight0)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(A,A) without WithLoops")

	gl := core.NewGraph(core.WithLoops())
	_, err = gl.AddEdge(VertexA, VertexA, Weight0)
	MustNoError(t, err, "AddEdge(A,A) with WithLoops")

	// Parallel edge rejected without WithMultiEdges.
	_, err = gw.AddEdge(VertexA, VertexB, Weight1)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "parallel AddEdge(A,B) without WithMultiEdges")

	gm := core.NewGraph(core.WithMultiEdges())
	id1, err := gm.AddEdge(VertexA, VertexB, Weight0)
	MustNoError(t, err, "first AddEdge(A,B) on multigraph")
	id2, err := gm.AddEdge(VertexA, VertexB, Weight0)
	MustNoError(t, err, "second AddEdge(A,B) on multigraph")
	MustTrue(t, id1 != id2, "parallel edges must receive distinct IDs")
}

// TestGraph_MixedEdges verifies per-edge direction overrides require mixed mode.
func TestGraph_MixedEdges(t *testing.T) {
	g := core.NewGraph() // undirected default, no mixed mode
	_, err := g.AddEdge(VertexA, VertexB, Weight0, core.WithEdgeDirected(true))
	MustErrorIs(t, err, core.ErrMixedEdgesNotAllowed, "direction override without mixed mode")

	gm := core.NewMixedGraph()
	_, err = gm.AddEdge(VertexA, VertexB, Weight0, core.WithEdgeDirected(true))
	MustNoError(t, err, "direction override in mixed graph")
	MustTrue(t, gm.HasEdge(VertexA, VertexB), "HasEdge(A,B) directed")
	MustFalse(t, gm.HasEdge(VertexB, VertexA), "HasEdge(B,A) must be false for directed edge")
}

// TestGraph_Metadata covers vertex and edge attribute storage.
func TestGraph_Metadata(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")

	// Fresh vertex starts with a non-nil empty map.
	m, err := g.VertexMetadata(VertexA)
	MustNoError(t, err, "VertexMetadata(A)")
	MustEqualInt(t, len(m), 0, "fresh vertex metadata must be empty")

	MustNoError(t, g.SetVertexMetadata(VertexA, map[string]interface{}{"element": "C"}), "SetVertexMetadata(A)")
	m, err = g.VertexMetadata(VertexA)
	MustNoError(t, err, "VertexMetadata(A) after set")
	MustEqualString(t, m["element"].(string), "C", "stored attribute must round-trip")

	_, err = g.VertexMetadata(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "VertexMetadata(missing)")
	MustErrorIs(t, g.SetVertexMetadata(VertexEmpty, nil), core.ErrEmptyVertexID, "SetVertexMetadata(empty)")

	// Edge attributes via EdgeOption.
	eid, err := g.AddEdge(VertexA, VertexB, Weight0,
		core.WithEdgeMetadata(map[string]interface{}{"bond": "double"}))
	MustNoError(t, err, "AddEdge with metadata")
	e, err := g.GetEdge(eid)
	MustNoError(t, err, "GetEdge")
	MustEqualString(t, e.Metadata["bond"].(string), "double", "edge attribute must round-trip")
}

// TestGraph_NeighborQueries verifies Neighbors/NeighborIDs ordering and the
// outgoing-only policy for directed edges.
func TestGraph_NeighborQueries(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	MustNoError(t, mustAdd(g, VertexB, VertexA), "AddEdge(B,A)")
	MustNoError(t, mustAdd(g, VertexA, VertexC), "AddEdge(A,C)")
	MustNoError(t, mustAdd(g, VertexA, VertexD), "AddEdge(A,D)")

	ids, err := g.NeighborIDs(VertexA)
	MustNoError(t, err, "NeighborIDs(A)")
	MustSortedStrings(t, ids, "NeighborIDs(A) order")
	MustSameStringSet(t, ids, []string{VertexC, VertexD}, "NeighborIDs(A): outgoing only")

	_, err = g.Neighbors(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "Neighbors(empty)")
	_, err = g.Neighbors(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(missing)")
}

// TestGraph_SuccessorPredecessorIDs verifies orientation-aware neighborhood
// queries backed by the reverse index.
func TestGraph_SuccessorPredecessorIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	MustNoError(t, mustAdd(g, VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, mustAdd(g, VertexC, VertexB), "AddEdge(C,B)")
	MustNoError(t, mustAdd(g, VertexB, VertexD), "AddEdge(B,D)")

	succ, err := g.SuccessorIDs(VertexB)
	MustNoError(t, err, "SuccessorIDs(B)")
	MustSameStringSet(t, succ, []string{VertexD}, "SuccessorIDs(B)")

	pred, err := g.PredecessorIDs(VertexB)
	MustNoError(t, err, "PredecessorIDs(B)")
	MustSortedStrings(t, pred, "PredecessorIDs(B) order")
	MustSameStringSet(t, pred, []string{VertexA, VertexC}, "PredecessorIDs(B)")

	// Undirected graphs: predecessors equal neighbors.
	gu := core.NewGraph()
	MustNoError(t, mustAdd(gu, VertexU, VertexV), "AddEdge(U,V)")
	pred, err = gu.PredecessorIDs(VertexU)
	MustNoError(t, err, "PredecessorIDs(U) undirected")
	MustSameStringSet(t, pred, []string{VertexV}, "undirected predecessors = neighbors")
}

// TestGraph_MultiplicityAndEdgesBetween verifies parallel-edge queries.
func TestGraph_MultiplicityAndEdgesBetween(t *testing.T) {
	g := NewGraphFull()
	_, err := g.AddEdge(VertexA, VertexB, Weight1)
	MustNoError(t, err, "AddEdge(A,B) #1")
	_, err = g.AddEdge(VertexA, VertexB, Weight2)
	MustNoError(t, err, "AddEdge(A,B) #2")

	MustEqualInt(t, g.EdgeMultiplicity(VertexA, VertexB), 2, "EdgeMultiplicity(A,B)")
	MustEqualInt(t, g.EdgeMultiplicity(VertexB, VertexA), 2, "EdgeMultiplicity(B,A) mirrored")
	MustEqualInt(t, g.EdgeMultiplicity(VertexA, VertexX), 0, "EdgeMultiplicity to missing vertex")

	between := g.EdgesBetween(VertexA, VertexB)
	MustEqualInt(t, len(between), 2, "EdgesBetween(A,B) count")
	MustTrue(t, between[0].ID < between[1].ID, "EdgesBetween sorted by Edge.ID")

	MustTrue(t, g.EdgesBetween(VertexA, VertexX) == nil, "EdgesBetween to missing must be nil")
}

// TestGraph_RemoveEdge verifies removal of edge, mirror and reverse index.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge(VertexA, VertexB, Weight0)
	MustNoError(t, err, "AddEdge(A,B)")

	MustNoError(t, g.RemoveEdge(eid), "RemoveEdge")
	MustFalse(t, g.HasEdge(VertexA, VertexB), "HasEdge after removal")
	pred, err := g.PredecessorIDs(VertexB)
	MustNoError(t, err, "PredecessorIDs(B) after removal")
	MustEqualInt(t, len(pred), 0, "reverse index must be unlinked")

	MustErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound, "RemoveEdge twice")
}

// TestGraph_RemoveVertexCascades verifies incident-edge cleanup.
func TestGraph_RemoveVertexCascades(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	MustNoError(t, mustAdd(g, VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, mustAdd(g, VertexB, VertexC), "AddEdge(B,C)")

	MustNoError(t, g.RemoveVertex(VertexB), "RemoveVertex(B)")
	MustEqualInt(t, g.EdgeCount(), 0, "incident edges must be removed with the vertex")
	MustFalse(t, g.HasEdge(VertexA, VertexB), "HasEdge(A,B) after cascade")

	pred, err := g.PredecessorIDs(VertexC)
	MustNoError(t, err, "PredecessorIDs(C) after cascade")
	MustEqualInt(t, len(pred), 0, "reverse index pruned after cascade")
}

// TestGraph_Degree verifies directed in/out splits, self-loop conventions and
// the undirected component.
func TestGraph_Degree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	MustNoError(t, mustAdd(g, VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, mustAdd(g, VertexC, VertexA), "AddEdge(C,A)")
	MustNoError(t, mustAdd(g, VertexA, VertexA), "AddEdge(A,A)")

	in, out, und, err := g.Degree(VertexA)
	MustNoError(t, err, "Degree(A)")
	MustEqualInt(t, in, 2, "in-degree: C->A plus self-loop")
	MustEqualInt(t, out, 2, "out-degree: A->B plus self-loop")
	MustEqualInt(t, und, 0, "no undirected component in directed graph")

	// Undirected self-loop counts +2 by the classic convention.
	gu := core.NewGraph(core.WithLoops())
	MustNoError(t, mustAdd(gu, VertexU, VertexU), "AddEdge(U,U)")
	MustNoError(t, mustAdd(gu, VertexU, VertexV), "AddEdge(U,V)")
	_, _, und, err = gu.Degree(VertexU)
	MustNoError(t, err, "Degree(U)")
	MustEqualInt(t, und, 3, "undirected loop +2, plain edge +1")

	_, _, _, err = g.Degree(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Degree(missing)")
}

// TestGraph_OrderingContracts anchors the sorted-enumeration guarantees that
// higher-level algorithms rely on.
func TestGraph_OrderingContracts(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexD, VertexB, VertexA, VertexC} {
		MustNoError(t, g.AddVertex(id), "AddVertex")
	}
	MustSortedStrings(t, g.Vertices(), "Vertices() sorted")

	MustNoError(t, mustAdd(g, VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, mustAdd(g, VertexA, VertexC), "AddEdge(A,C)")
	edges := g.Edges()
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	MustSortedStrings(t, ids, "Edges() sorted by ID")
}

// TestGraph_CloneAndClear verifies deep copy independence and Clear semantics.
func TestGraph_CloneAndClear(t *testing.T) {
	g := NewGraphFull()
	MustNoError(t, g.SetVertexMetadata(mustVertex(t, g, VertexA), map[string]interface{}{"k": 1}), "SetVertexMetadata")
	_, err := g.AddEdge(VertexA, VertexB, Weight2p5)
	MustNoError(t, err, "AddEdge(A,B,2.5)")

	clone := g.Clone()
	MustEqualInt(t, clone.VertexCount(), g.VertexCount(), "clone vertex count")
	MustEqualInt(t, clone.EdgeCount(), g.EdgeCount(), "clone edge count")

	// Mutating the clone must not affect the source.
	_, err = clone.AddEdge(VertexA, VertexC, Weight1)
	MustNoError(t, err, "AddEdge on clone")
	MustFalse(t, g.HasEdge(VertexA, VertexC), "source untouched by clone mutation")

	// New IDs on the clone must not collide with copied ones.
	between := clone.EdgesBetween(VertexA, VertexC)
	MustEqualInt(t, len(between), 1, "clone edge present")

	empty := g.CloneEmpty()
	MustEqualInt(t, empty.VertexCount(), g.VertexCount(), "CloneEmpty keeps vertices")
	MustEqualInt(t, empty.EdgeCount(), 0, "CloneEmpty drops edges")

	g.Clear()
	MustEqualInt(t, g.VertexCount(), 0, "Clear drops vertices")
	MustEqualInt(t, g.EdgeCount(), 0, "Clear drops edges")
	MustTrue(t, g.Weighted(), "Clear preserves flags")
}

// TestGraph_Views verifies UnweightedView and InducedSubgraph non-mutation
// and filtering contracts.
func TestGraph_Views(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, err := g.AddEdge(VertexA, VertexB, Weight5)
	MustNoError(t, err, "AddEdge(A,B,5)")
	_, err = g.AddEdge(VertexB, VertexC, Weight2)
	MustNoError(t, err, "AddEdge(B,C,2)")

	uv := core.UnweightedView(g)
	MustFalse(t, uv.Weighted(), "view must be unweighted")
	for _, e := range uv.Edges() {
		MustEqualFloat(t, e.Weight, Weight0, "view edge weight zeroed")
	}
	MustEqualFloat(t, g.Edges()[0].Weight, Weight5, "source weights untouched")

	sub := core.InducedSubgraph(g, map[string]bool{VertexA: true, VertexB: true})
	MustEqualInt(t, sub.VertexCount(), 2, "induced vertex count")
	MustEqualInt(t, sub.EdgeCount(), 1, "induced edge count: only A->B survives")
	MustTrue(t, sub.HasEdge(VertexA, VertexB), "induced edge A->B kept")
	MustFalse(t, sub.HasVertex(VertexC), "vertex C filtered out")

	pred, err := sub.PredecessorIDs(VertexB)
	MustNoError(t, err, "PredecessorIDs on induced subgraph")
	MustSameStringSet(t, pred, []string{VertexA}, "reverse index rebuilt in view")
}

// TestGraph_Stats verifies the aggregate snapshot counters.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	MustNoError(t, mustAdd(g, VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, mustAdd(g, VertexA, VertexA), "AddEdge(A,A)")
	MustNoError(t, mustAdd(g, VertexA, VertexB), "AddEdge(A,B) parallel")

	st := g.Stats()
	MustEqualInt(t, st.VertexCount, 2, "Stats vertex count")
	MustEqualInt(t, st.EdgeCount, 3, "Stats edge count")
	MustEqualInt(t, st.DirectedEdgeCount, 3, "Stats directed edge count")
	MustTrue(t, st.DirectedDefault, "Stats directed default flag")
	MustTrue(t, st.AllowsLoops, "Stats loops flag")
}

// mustAdd adds an unweighted edge and returns the error only (ID discarded).
func mustAdd(g *core.Graph, from, to string) error {
	_, err := g.AddEdge(from, to, Weight0)
	return err
}

// mustVertex ensures id exists and returns it (fluent helper for metadata tests).
func mustVertex(t *testing.T, g *core.Graph, id string) string {
	t.Helper()
	MustNoError(t, g.AddVertex(id), "AddVertex("+id+")")
	return id
}
