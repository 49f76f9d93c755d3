// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Under muVert write lock, check presence; if missing, allocate and register.
//  3. Under muEdgeAdj write lock, bootstrap adjacency buckets so edge methods
//     can rely on invariants.
//
// Metadata is initialized to a non-nil map for convenience in tests and
// algorithms. Lock order is muVert -> muEdgeAdj to avoid inversion.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}

	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	ensurePredecessor(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexMetadata returns the attribute map of the given vertex, or
// ErrVertexNotFound / ErrEmptyVertexID. The returned map is the live catalog
// map; treat it as read-only unless you own the graph exclusively.
// Complexity: O(1).
func (g *Graph) VertexMetadata(id string) (map[string]interface{}, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Metadata, nil
}

// SetVertexMetadata replaces the attribute map of an existing vertex.
// The map is stored as-is (not copied); pass nil to clear attributes.
// Complexity: O(1).
func (g *Graph) SetVertexMetadata(id string, m map[string]interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata = m

	return nil
}

// RemoveVertex deletes a vertex and all incident edges (directed and undirected).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//  3. Verify vertex presence (ErrVertexNotFound).
//  4. Scan edge catalog once; unlink adjacency for each incident edge.
//  5. Delete the vertex and prune empty adjacency buckets.
//
// Complexity: O(E) for scanning the edge catalog.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Remove all incident edges (directed or undirected).
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Stable enumeration surface used for determinism in higher-level algorithms
// (the matcher relies on it to index nodes reproducibly).
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID -> *Vertex).
// Vertex pointers refer to live objects; treat them as read-only by convention.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		out[id] = v
	}

	return out
}

// Degree returns the degree components of the given vertex ID:
//
//   - in: number of incoming directed edges (e.To == id)
//   - out: number of outgoing directed edges (e.From == id)
//   - undirected: contribution from undirected edges
//
// Academic policy:
//   - Directed edges contribute to in/out only.
//   - Undirected edges contribute to undirected only.
//   - Directed self-loop (id -> id) contributes +1 to both in and out.
//   - Undirected self-loop contributes +2 to undirected (classic convention).
//
// Uses both adjacency indexes, so the cost is proportional to the vertex's
// own neighborhood rather than the whole edge catalog.
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	// Lock order muVert -> muEdgeAdj, same as mutators.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	var e *Edge
	var eid string
	// Outgoing directed and incident undirected edges live under adjacencyList[id].
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed {
				// Bucket [id][*] holds only e.From==id directed edges.
				out++
				if e.From == e.To {
					in++ // directed self-loop counts on both sides
				}
				continue
			}
			if e.From == id && e.To == id {
				undirected += 2 // undirected self-loop, classic +2
			} else {
				undirected++
			}
		}
	}
	// Incoming directed edges live under predecessorList[id]; self-loops were
	// already counted above.
	for _, edgeSet := range g.predecessorList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() || e.From == e.To {
				continue
			}
			in++
		}
	}

	return in, out, undirected, nil
}
