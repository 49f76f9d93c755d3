// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, SuccessorIDs, PredecessorIDs,
//       AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs()/SuccessorIDs()/PredecessorIDs() return unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex edgeID slices sorted by Edge.ID asc.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.
package core

import "sort"

// Neighbors returns all edges incident to the given vertex id under the
// graph's neighborhood policy.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges (mirrored adjacency is used);
//     self-loops appear once.
//
// Steps:
//  1. Validate id is non-empty (ErrEmptyVertexID).
//  2. Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//  3. Validate vertex existence (ErrVertexNotFound).
//  4. Collect incident edges from adjacencyList[id] buckets.
//  5. Sort the result by Edge.ID ascending.
//
// Returned pointers reference live catalog edges; treat them as read-only.
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order matches mutators (muVert -> muEdgeAdj) so a vertex cannot
	// disappear between validation and adjacency snapshotting.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]

			// Defensive guard: adjacency should not reference missing edges.
			if e.IsNil() {
				continue
			}

			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending.
//
// Adjacency policy follows Neighbors(id): for directed edges only outgoing
// neighbors are included; undirected edges contribute the far endpoint.
// Complexity: O(d + k log k) where k is the number of unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// SuccessorIDs returns the unique out-neighbors of id, sorted lex asc.
// For undirected graphs this equals NeighborIDs; the alias exists so callers
// that care about orientation (the matcher's directed feasibility rules) can
// name the direction they mean.
func (g *Graph) SuccessorIDs(id string) ([]string, error) {
	return g.NeighborIDs(id)
}

// PredecessorIDs returns the unique in-neighbors of id, sorted lex asc:
// sources of directed edges into id (via the reverse index) plus far
// endpoints of incident undirected edges.
//
// Complexity: O(d + k log k) — proportional to id's own neighborhood thanks
// to predecessorList; no catalog scan.
func (g *Graph) PredecessorIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	var eid string
	var e *Edge
	// Directed in-edges from the reverse index.
	for from, edgeSet := range g.predecessorList[id] {
		if len(edgeSet) > 0 {
			seen[from] = struct{}{}
		}
	}
	// Undirected incident edges from the mirrored adjacency.
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() || e.Directed {
				continue
			}
			if e.From == id {
				seen[e.To] = struct{}{}
			} else {
				seen[e.From] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each "from" vertex ID to the list
// of incident edge IDs. Each slice is sorted by Edge.ID ascending for
// deterministic per-vertex enumeration; slices are freshly allocated and safe
// to retain. Map key iteration order is not deterministic (Go map rule); use
// Vertices() for stable key order.
// Complexity: O(V + E + Σ sort(deg(v))).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		// Fresh buffer per vertex to avoid sharing backing arrays across keys.
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid)
			}
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency guarantees that adjacencyList[from] and
// adjacencyList[from][to] are initialized.
// Must be called ONLY under muEdgeAdj write lock by mutating code paths.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// ensurePredecessor guarantees that predecessorList[to] and
// predecessorList[to][from] are initialized.
// Must be called ONLY under muEdgeAdj write lock by mutating code paths.
func ensurePredecessor(g *Graph, to, from string) {
	if g.predecessorList[to] == nil {
		g.predecessorList[to] = make(map[string]map[string]struct{})
	}
	if g.predecessorList[to][from] == nil {
		g.predecessorList[to][from] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for the edge endpoints.
//
// Removal policy:
//   - Always remove from adjacencyList[e.From][e.To].
//   - Undirected non-loop ⇒ also remove the mirror adjacencyList[e.To][e.From].
//   - Directed ⇒ also remove the reverse index predecessorList[e.To][e.From].
//
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
	if e.Directed {
		if m := g.predecessorList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.predecessorList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets in both adjacency indexes
// after removals. Idempotent. Must be called ONLY under muEdgeAdj write lock.
// Complexity: O(V + B) where B is the number of (from,to) buckets scanned.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
	for u, fromMap := range g.predecessorList {
		for v, edgeSet := range fromMap {
			if len(edgeSet) == 0 {
				delete(fromMap, v)
			}
		}
		if len(fromMap) == 0 {
			delete(g.predecessorList, u)
		}
	}
}
