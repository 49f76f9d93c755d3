// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology shape, counts, determinism, and
// sentinel errors.
package builder_test

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/katalvlaran/isomorph/builder"
	"github.com/katalvlaran/isomorph/core"
)

// undirDegree returns the undirected degree of id, failing the test on error.
func undirDegree(t *testing.T, g *core.Graph, id string) int {
	t.Helper()
	_, _, und, err := g.Degree(id)
	if err != nil {
		t.Fatalf("Degree(%s): %v", id, err)
	}

	return und
}

// hasUndirEdge reports adjacency in either direction.
func hasUndirEdge(g *core.Graph, u, v string) bool {
	return g.HasEdge(u, v) || g.HasEdge(v, u)
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)",
			ctor: builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint((i+1)%5)
					if !hasUndirEdge(g, from, to) {
						t.Errorf("Cycle: missing edge %s-%s", from, to)
					}
				}
			},
		},
		{
			name: "Path(4)",
			ctor: builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint(i+1)
					if !hasUndirEdge(g, from, to) {
						t.Errorf("Path: missing edge %s-%s", from, to)
					}
				}
			},
		},
		{
			name: "Star(5)",
			ctor: builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if got := undirDegree(t, g, builder.CenterVertexID); got != 4 {
					t.Errorf("Star: hub degree = %d, want 4", got)
				}
			},
		},
		{
			name: "Wheel(6)",
			ctor: builder.Wheel(6),
			wantV: 6, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// Rim C5 plus 5 spokes: hub degree 5, rim degrees 3.
				if got := undirDegree(t, g, builder.CenterVertexID); got != 5 {
					t.Errorf("Wheel: hub degree = %d, want 5", got)
				}
				for i := 0; i < 5; i++ {
					if got := undirDegree(t, g, fmt.Sprint(i)); got != 3 {
						t.Errorf("Wheel: rim %d degree = %d, want 3", i, got)
					}
				}
			},
		},
		{
			name: "Complete(4)",
			ctor: builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					if got := undirDegree(t, g, id); got != 3 {
						t.Errorf("Complete: degree(%s) = %d, want 3", id, got)
					}
				}
			},
		},
		{
			name: "CompleteBipartite(2,3)",
			ctor: builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				want := []string{"L0", "L1", "R0", "R1", "R2"}
				got := g.Vertices()
				sort.Strings(got)
				if len(got) != len(want) {
					t.Fatalf("CompleteBipartite: vertices = %v, want %v", got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("CompleteBipartite: vertex[%d] = %s, want %s", i, got[i], want[i])
					}
				}
				// No intra-partition edges.
				if hasUndirEdge(g, "L0", "L1") || hasUndirEdge(g, "R0", "R1") {
					t.Error("CompleteBipartite: intra-partition edge present")
				}
			},
		},
		{
			name: "Grid(2,3)",
			ctor: builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !hasUndirEdge(g, builder.GridVertexID(0, 0), builder.GridVertexID(0, 1)) {
					t.Error("Grid: missing right neighbor edge at (0,0)")
				}
				if !hasUndirEdge(g, builder.GridVertexID(0, 0), builder.GridVertexID(1, 0)) {
					t.Error("Grid: missing bottom neighbor edge at (0,0)")
				}
				if hasUndirEdge(g, builder.GridVertexID(0, 0), builder.GridVertexID(1, 1)) {
					t.Error("Grid: unexpected diagonal edge")
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertex count = %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edge count = %d, want %d", got, tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestPlatonicSolids_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   builder.PlatonicName
		wantV  int
		wantE  int
		degree int
	}{
		{builder.Tetrahedron, 4, 6, 3},
		{builder.Cube, 8, 12, 3},
		{builder.Octahedron, 6, 12, 4},
		{builder.Dodecahedron, 20, 30, 3},
		{builder.Icosahedron, 12, 30, 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name.String(), func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(tc.name, false))
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertex count = %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edge count = %d, want %d", got, tc.wantE)
			}
			// Every Platonic shell is regular.
			for _, id := range g.Vertices() {
				if got := undirDegree(t, g, id); got != tc.degree {
					t.Errorf("degree(%s) = %d, want %d", id, got, tc.degree)
				}
			}
		})
	}
}

func TestPlatonicSolid_WithCenter(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Octahedron, true))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := g.VertexCount(); got != 7 {
		t.Errorf("vertex count = %d, want 7", got)
	}
	// Shell 12 edges + 6 spokes.
	if got := g.EdgeCount(); got != 18 {
		t.Errorf("edge count = %d, want 18", got)
	}
	if got := undirDegree(t, g, builder.CenterVertexID); got != 6 {
		t.Errorf("hub degree = %d, want 6", got)
	}
}

func TestRandomRegular_DegreesAndDeterminism(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(7)},
			builder.RandomRegular(10, 3))
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}

		return g
	}

	g := build()
	if got := g.EdgeCount(); got != 15 {
		t.Errorf("edge count = %d, want n*d/2 = 15", got)
	}
	for _, id := range g.Vertices() {
		if got := undirDegree(t, g, id); got != 3 {
			t.Errorf("degree(%s) = %d, want 3", id, got)
		}
	}

	// Same seed reproduces the identical edge set.
	h := build()
	for _, e := range g.Edges() {
		if !hasUndirEdge(h, e.From, e.To) {
			t.Errorf("determinism: edge %s-%s missing in rebuilt graph", e.From, e.To)
		}
	}
}

func TestRandomSparse_BoundariesAndDeterminism(t *testing.T) {
	t.Parallel()

	// p=0 and p=1 are deterministic and need no RNG.
	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 0))
	if err != nil {
		t.Fatalf("RandomSparse(6,0): %v", err)
	}
	if got := empty.EdgeCount(); got != 0 {
		t.Errorf("p=0: edge count = %d, want 0", got)
	}

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 1))
	if err != nil {
		t.Fatalf("RandomSparse(6,1): %v", err)
	}
	if got := full.EdgeCount(); got != 15 {
		t.Errorf("p=1: edge count = %d, want C(6,2) = 15", got)
	}

	// Interior p requires a seed and reproduces per seed.
	a, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(12, 0.3))
	if err != nil {
		t.Fatalf("RandomSparse(12,0.3): %v", err)
	}
	b, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(12, 0.3))
	if err != nil {
		t.Fatalf("RandomSparse(12,0.3) rebuild: %v", err)
	}
	if a.EdgeCount() != b.EdgeCount() {
		t.Errorf("determinism: edge counts differ, %d vs %d", a.EdgeCount(), b.EdgeCount())
	}
	for _, e := range a.Edges() {
		if !hasUndirEdge(b, e.From, e.To) {
			t.Errorf("determinism: edge %s-%s missing in rebuilt graph", e.From, e.To)
		}
	}
}

func TestBuilders_SentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		gopt []core.GraphOption
		want error
	}{
		{name: "Cycle too small", ctor: builder.Cycle(2), want: builder.ErrTooFewVertices},
		{name: "Path too small", ctor: builder.Path(1), want: builder.ErrTooFewVertices},
		{name: "Star too small", ctor: builder.Star(1), want: builder.ErrTooFewVertices},
		{name: "Wheel too small", ctor: builder.Wheel(3), want: builder.ErrTooFewVertices},
		{name: "Complete zero", ctor: builder.Complete(0), want: builder.ErrTooFewVertices},
		{name: "Bipartite empty side", ctor: builder.CompleteBipartite(0, 3), want: builder.ErrTooFewVertices},
		{name: "Grid zero dim", ctor: builder.Grid(0, 4), want: builder.ErrTooFewVertices},
		{name: "Sparse bad probability", ctor: builder.RandomSparse(4, 1.5), want: builder.ErrInvalidProbability},
		{
			name: "Sparse missing rng",
			ctor: builder.RandomSparse(4, 0.5),
			want: builder.ErrNeedRandSource,
		},
		{
			name: "Regular missing rng",
			ctor: builder.RandomRegular(4, 2),
			want: builder.ErrNeedRandSource,
		},
		{
			name: "Regular odd parity",
			ctor: builder.RandomRegular(5, 3),
			opts: []builder.BuilderOption{builder.WithSeed(1)},
			want: builder.ErrTooFewVertices,
		},
		{
			name: "Regular directed mode",
			ctor: builder.RandomRegular(6, 2),
			opts: []builder.BuilderOption{builder.WithSeed(1)},
			gopt: []core.GraphOption{core.WithDirected(true)},
			want: builder.ErrUnsupportedGraphMode,
		},
		{
			name: "Platonic unknown name",
			ctor: builder.PlatonicSolid(builder.PlatonicName(99), false),
			want: builder.ErrOptionViolation,
		},
		{name: "nil constructor", ctor: nil, want: builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.gopt, tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want errors.Is(..., %v)", err, tc.want)
			}
		})
	}
}

func TestWithVertexMetadata(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithVertexMetadata(func(id string) map[string]interface{} {
			return map[string]interface{}{"label": "atom-" + id}
		})},
		builder.Wheel(5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	// Every vertex, the fixed hub included, carries metadata.
	for _, id := range g.Vertices() {
		md, err := g.VertexMetadata(id)
		if err != nil {
			t.Fatalf("VertexMetadata(%s): %v", id, err)
		}
		if md["label"] != "atom-"+id {
			t.Errorf("metadata(%s) = %v, want label atom-%s", id, md, id)
		}
	}
}

func TestWeightedBuild(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2.5)},
		builder.Cycle(4))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	for _, e := range g.Edges() {
		if e.Weight != 2.5 {
			t.Errorf("edge %s-%s weight = %g, want 2.5", e.From, e.To, e.Weight)
		}
	}

	// Unweighted graphs ignore the weight policy entirely.
	u, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(2.5)},
		builder.Cycle(4))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	for _, e := range u.Edges() {
		if e.Weight != 0 {
			t.Errorf("unweighted edge %s-%s weight = %g, want 0", e.From, e.To, e.Weight)
		}
	}
}

func TestBuildGraph_ComposedConstructors(t *testing.T) {
	t.Parallel()

	// Star(4) adds Center plus leaves 1..3; Path(3) reuses vertices 0..2.
	// Vertex insertion is idempotent, so the union is 5 vertices / 5 edges.
	g, err := builder.BuildGraph(nil, nil, builder.Star(4), builder.Path(3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := g.VertexCount(); got != 5 {
		t.Errorf("vertex count = %d, want 5", got)
	}
	if got := g.EdgeCount(); got != 5 {
		t.Errorf("edge count = %d, want 5", got)
	}
	if !hasUndirEdge(g, builder.CenterVertexID, "2") || !hasUndirEdge(g, "0", "1") {
		t.Error("composition: expected edges from both constructors")
	}
}
