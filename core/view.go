// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs and directedness. No reordering guarantees beyond core rules.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
package core

import "sync/atomic"

// viewEdgeWeightZero is the canonical weight value used by views that enforce
// unweighted semantics. Named to make "forced zero weight" intentional and
// grep-friendly.
const viewEdgeWeightZero float64 = 0

// linkViewEdge registers an already-constructed edge copy into a view graph's
// catalog and both adjacency indexes. Assumes exclusive ownership of out.
func linkViewEdge(out *Graph, ne *Edge) {
	out.edges[ne.ID] = ne
	ensureAdjacency(out, ne.From, ne.To)
	out.adjacencyList[ne.From][ne.To][ne.ID] = struct{}{}
	if !ne.Directed && ne.From != ne.To {
		ensureAdjacency(out, ne.To, ne.From)
		out.adjacencyList[ne.To][ne.From][ne.ID] = struct{}{}
	}
	if ne.Directed {
		ensurePredecessor(out, ne.To, ne.From)
		out.predecessorList[ne.To][ne.From][ne.ID] = struct{}{}
	}
}

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off. The input graph is not
// mutated. Edge IDs, attributes and directedness are preserved.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	// Build a graph with same directedness/mode but unweighted.
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	if g.MixedEdges() {
		opts = append(opts, WithMixedEdges())
	}
	out := NewGraph(opts...)

	// Copy vertices
	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	// Copy edges with zero weight, preserving IDs and directedness.
	g.muEdgeAdj.RLock()
	// Snapshot the edge ID counter under the same lock as the edge catalog
	// snapshot, so the view continues generating IDs strictly after the last
	// ID used by 'g'.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		linkViewEdge(out, &Edge{
			ID: eid, From: e.From, To: e.To,
			Weight: viewEdgeWeightZero, Metadata: e.Metadata, Directed: e.Directed,
		})
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both in keep. The input graph is not mutated.
//
// Matching note: for any mapping produced in induced-subgraph mode, the target
// vertices of the mapping induce (via this view) a graph isomorphic to the
// pattern — tests use exactly this cross-check.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	// Reuse the same configuration as g (including weighted flag).
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	if g.MixedEdges() {
		opts = append(opts, WithMixedEdges())
	}
	out := NewGraph(opts...)

	// Copy only kept vertices.
	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	// Copy only edges whose endpoints are both kept; preserve ID, weight,
	// attributes and directedness.
	g.muEdgeAdj.RLock()
	// Carry the counter forward even if some edges are filtered out, to keep
	// monotonicity aligned with the source graph.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		linkViewEdge(out, &Edge{
			ID: eid, From: e.From, To: e.To,
			Weight: e.Weight, Metadata: e.Metadata, Directed: e.Directed,
		})
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
