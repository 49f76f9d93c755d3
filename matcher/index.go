// File: index.go
// Role: Immutable int-indexed snapshot of one GraphView, built once per search.
// Rationale:
//   - The search inner loop runs on dense int indexes (array lookups) instead
//     of string IDs and interface calls; the view is consulted again only for
//     attribute lookups during semantic checks.
// Determinism:
//   - Internal index = position in the lexicographically sorted ID slice, so
//     ascending index order equals ascending ID order everywhere.
package matcher

// unmapped marks a node without a counterpart in the partial bijection.
const unmapped = -1

// graphIndex is a read-only dense snapshot of one graph.
type graphIndex struct {
	view GraphView

	ids  []string       // internal index → node ID, sorted asc
	idOf map[string]int // node ID → internal index
	n    int

	directed bool
	multi    bool

	// succ/pred hold neighbor indexes sorted ascending, self excluded
	// (self-loops are tracked separately in loops). For undirected graphs
	// pred aliases succ.
	succ [][]int
	pred [][]int

	deg    []int // total degree (loops included per core convention)
	inDeg  []int
	outDeg []int
	loops  []int // self-loop multiplicity per node

	// mult maps an oriented index pair to its parallel-edge count.
	// Undirected edges are stored under both orientations.
	mult map[uint64]int
}

// pairKey packs an oriented index pair into one map key.
func pairKey(u, v int) uint64 { return uint64(uint32(u))<<32 | uint64(uint32(v)) }

// buildIndex snapshots a GraphView into a graphIndex.
// Complexity: O(V log V + E log E) dominated by the view's sorted enumerations.
func buildIndex(view GraphView) *graphIndex {
	ids := view.VertexIDs()
	n := len(ids)

	idx := &graphIndex{
		view:     view,
		ids:      ids,
		idOf:     make(map[string]int, n),
		n:        n,
		directed: view.Directed(),
		multi:    view.Multigraph(),
		succ:     make([][]int, n),
		pred:     make([][]int, n),
		deg:      make([]int, n),
		inDeg:    make([]int, n),
		outDeg:   make([]int, n),
		loops:    make([]int, n),
		mult:     make(map[uint64]int),
	}
	var i int
	var id string
	for i, id = range ids {
		idx.idOf[id] = i
	}

	for i, id = range ids {
		idx.deg[i] = view.Degree(id)
		idx.inDeg[i] = view.InDegree(id)
		idx.outDeg[i] = view.OutDegree(id)
		idx.loops[i] = view.EdgeMultiplicity(id, id)

		idx.succ[i] = idx.toIndexes(i, view.SuccessorIDs(id))
		if idx.directed {
			idx.pred[i] = idx.toIndexes(i, view.PredecessorIDs(id))
		} else {
			idx.pred[i] = idx.succ[i]
		}

		// Multiplicity snapshot for the outgoing orientation; the undirected
		// mirror lands when the far endpoint is processed.
		var v int
		for _, v = range idx.succ[i] {
			idx.mult[pairKey(i, v)] = view.EdgeMultiplicity(id, idx.ids[v])
		}
		if idx.loops[i] > 0 {
			idx.mult[pairKey(i, i)] = idx.loops[i]
		}
	}

	return idx
}

// toIndexes maps neighbor IDs to internal indexes, dropping self (tracked via
// loops). Input IDs are sorted asc, so output indexes are ascending too.
func (x *graphIndex) toIndexes(self int, neighborIDs []string) []int {
	if len(neighborIDs) == 0 {
		return nil
	}
	out := make([]int, 0, len(neighborIDs))
	var id string
	for _, id = range neighborIDs {
		if v, ok := x.idOf[id]; ok && v != self {
			out = append(out, v)
		}
	}

	return out
}

// multiplicity returns the parallel-edge count for the oriented pair (u,v).
func (x *graphIndex) multiplicity(u, v int) int { return x.mult[pairKey(u, v)] }

// hasEdge reports whether at least one edge u→v exists.
func (x *graphIndex) hasEdge(u, v int) bool { return x.mult[pairKey(u, v)] > 0 }
