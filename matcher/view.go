// File: view.go
// Role: The read-only GraphView capability set consumed by the engine, plus
//       the adapter over core.Graph.
// Contract:
//   - Views are never mutated by the matcher; the storage layer must keep
//     query results stable for the duration of a search.
package matcher

import "github.com/katalvlaran/isomorph/core"

// GraphView is the minimal read-only capability set the engine needs from a
// graph storage layer. All ID-returning operations must enumerate in a
// deterministic (lexicographically ascending) order; the engine's
// reproducibility guarantees build on that.
//
// For undirected graphs SuccessorIDs and PredecessorIDs must both behave like
// NeighborIDs. Operations are assumed O(1) or O(degree).
type GraphView interface {
	// Directed reports whether every edge of the graph is directed.
	Directed() bool

	// Multigraph reports whether parallel edges may occur.
	Multigraph() bool

	// VertexCount returns the number of nodes.
	VertexCount() int

	// VertexIDs returns all node IDs sorted ascending.
	VertexIDs() []string

	// Degree returns the total degree of a node: the undirected degree, or
	// in+out for directed graphs. Self-loops count +2 (undirected) or +1 on
	// each side (directed).
	Degree(id string) int

	// InDegree and OutDegree split the directed degree; for undirected
	// graphs both equal Degree.
	InDegree(id string) int
	OutDegree(id string) int

	// NeighborIDs returns the unique adjacent node IDs sorted ascending.
	// Directed graphs return out-neighbors here.
	NeighborIDs(id string) []string

	// SuccessorIDs and PredecessorIDs return the orientation-split
	// neighborhoods for directed graphs, sorted ascending.
	SuccessorIDs(id string) []string
	PredecessorIDs(id string) []string

	// HasEdge reports whether at least one edge u→v exists (undirected:
	// either orientation).
	HasEdge(u, v string) bool

	// EdgeMultiplicity returns the number of parallel edges u→v.
	EdgeMultiplicity(u, v string) int

	// VertexAttrs returns the attribute map of a node (may be nil).
	VertexAttrs(id string) map[string]interface{}

	// EdgeAttrs returns one attribute map per parallel edge u→v, in a
	// deterministic order. Nil when no edge exists.
	EdgeAttrs(u, v string) []map[string]interface{}
}

// CoreView adapts a core.Graph to the GraphView interface.
//
// Weighted graphs expose Edge.Weight under the WeightAttrKey ("weight")
// attribute, merged with Edge.Metadata, so the weight comparators can consume
// it uniformly.
type CoreView struct {
	g        *core.Graph
	weighted bool
}

// NewCoreView wraps a core.Graph for matching. Mixed-mode graphs (per-edge
// directedness overrides) are rejected with ErrKindMismatch: match semantics
// require a uniformly directed or uniformly undirected graph.
func NewCoreView(g *core.Graph) (*CoreView, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.MixedEdges() {
		return nil, ErrKindMismatch
	}

	return &CoreView{g: g, weighted: g.Weighted()}, nil
}

// Directed reports the graph-wide directedness.
func (v *CoreView) Directed() bool { return v.g.Directed() }

// Multigraph reports the parallel-edge capability flag.
func (v *CoreView) Multigraph() bool { return v.g.Multigraph() }

// VertexCount returns the node count.
func (v *CoreView) VertexCount() int { return v.g.VertexCount() }

// VertexIDs returns all node IDs sorted ascending.
func (v *CoreView) VertexIDs() []string { return v.g.Vertices() }

// Degree returns the total degree (undirected + in + out components).
func (v *CoreView) Degree(id string) int {
	in, out, und, err := v.g.Degree(id)
	if err != nil {
		return 0
	}

	return in + out + und
}

// InDegree returns the incoming component (undirected graphs: total degree).
func (v *CoreView) InDegree(id string) int {
	in, _, und, err := v.g.Degree(id)
	if err != nil {
		return 0
	}

	return in + und
}

// OutDegree returns the outgoing component (undirected graphs: total degree).
func (v *CoreView) OutDegree(id string) int {
	_, out, und, err := v.g.Degree(id)
	if err != nil {
		return 0
	}

	return out + und
}

// NeighborIDs returns the adjacent node IDs (directed: out-neighbors).
func (v *CoreView) NeighborIDs(id string) []string {
	ids, err := v.g.NeighborIDs(id)
	if err != nil {
		return nil
	}

	return ids
}

// SuccessorIDs returns the out-neighbors.
func (v *CoreView) SuccessorIDs(id string) []string {
	ids, err := v.g.SuccessorIDs(id)
	if err != nil {
		return nil
	}

	return ids
}

// PredecessorIDs returns the in-neighbors.
func (v *CoreView) PredecessorIDs(id string) []string {
	ids, err := v.g.PredecessorIDs(id)
	if err != nil {
		return nil
	}

	return ids
}

// HasEdge reports whether at least one edge u→v exists.
func (v *CoreView) HasEdge(u, w string) bool { return v.g.HasEdge(u, w) }

// EdgeMultiplicity returns the number of parallel edges u→v.
func (v *CoreView) EdgeMultiplicity(u, w string) int { return v.g.EdgeMultiplicity(u, w) }

// VertexAttrs returns the node attribute map (nil for missing nodes).
func (v *CoreView) VertexAttrs(id string) map[string]interface{} {
	m, err := v.g.VertexMetadata(id)
	if err != nil {
		return nil
	}

	return m
}

// EdgeAttrs returns one attribute map per parallel edge u→v, sorted by edge
// ID. Weighted graphs get Edge.Weight merged in under WeightAttrKey.
func (v *CoreView) EdgeAttrs(u, w string) []map[string]interface{} {
	edges := v.g.EdgesBetween(u, w)
	if len(edges) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, len(edges))
	var i int
	var e *core.Edge
	for i, e = range edges {
		if !v.weighted && e.Metadata != nil {
			out[i] = e.Metadata
			continue
		}
		attrs := make(map[string]interface{}, len(e.Metadata)+1)
		var k string
		var val interface{}
		for k, val = range e.Metadata {
			attrs[k] = val
		}
		if v.weighted {
			attrs[WeightAttrKey] = e.Weight
		}
		out[i] = attrs
	}

	return out
}
