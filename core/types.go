// File: types.go
// Role: Declares Vertex, Edge, Graph, GraphOption, EdgeOption, GraphStats,
//       sentinel errors, and the NewGraph constructor.
// Concurrency:
//   - Two RWMutexes: muVert guards the vertex catalog, muEdgeAdj guards the
//     edge catalog plus both adjacency indexes.
// Determinism:
//   - Configuration flags are immutable after construction.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value attributes (labels, colors, element
// symbols, ...) consumed by attribute-aware algorithms such as matcher
// comparators. Metadata is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user attributes. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces. Reflect-free typed-nil detection used by validators.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a float64 Weight, an optional
// attribute map, and a Directed flag that overrides the Graph's default
// directedness when mixed edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost, capacity or similarity of the edge.
	// Unweighted graphs store 0 and reject anything else (ErrBadWeight).
	Weight float64

	// Metadata stores arbitrary user attributes (bond type, relation label, ...).
	// Nil when the edge carries no attributes. Not deep-copied by Clone.
	Metadata map[string]interface{}

	// Directed indicates this edge is one-way (true) or bidirectional (false)
	// when the Graph was constructed with mixed edge support.
	Directed bool
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Requires the graph to be constructed with WithMixedEdges, otherwise AddEdge
// rejects the override with ErrMixedEdgesNotAllowed.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithEdgeMetadata attaches an attribute map to the edge being added.
// Legal in every graph mode; the map is stored as-is (not copied).
func WithEdgeMetadata(m map[string]interface{}) EdgeOption {
	return func(e *Edge) { e.Metadata = m }
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault     bool
	Weighted            bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// Graph is the core in-memory graph data structure.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects vertices map; muEdgeAdj protects edges map and both
// adjacency indexes. nextEdgeID is an atomic counter for unique Edge.ID
// generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	// Directed edges are stored under their From vertex only; undirected
	// edges are mirrored under both endpoints.
	adjacencyList map[string]map[string]map[string]struct{}

	// predecessorList[(to)Vertex.ID][(from)Vertex.ID][Edge.ID] = struct{}{}
	// Reverse index for DIRECTED edges only, so PredecessorIDs and in-degree
	// queries run in O(in-degree) instead of scanning the edge catalog.
	// Undirected edges are never stored here (adjacencyList already mirrors them).
	predecessorList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given flags and options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:        make(map[string]*Vertex),
		edges:           make(map[string]*Edge),
		adjacencyList:   make(map[string]map[string]map[string]struct{}),
		predecessorList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
