package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/isomorph/core"
)

// benchGraph builds a directed ring with chords: n vertices, 2n edges.
func benchGraph(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for i := 0; i < n; i++ {
		from := "v" + strconv.Itoa(i)
		_, _ = g.AddEdge(from, "v"+strconv.Itoa((i+1)%n), 0)
		_, _ = g.AddEdge(from, "v"+strconv.Itoa((i+7)%n), 0)
	}
	return g
}

func BenchmarkGraph_AddEdge(b *testing.B) {
	b.ReportAllocs()
	g := core.NewGraph(core.WithMultiEdges())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("A", "B", 0)
	}
}

func BenchmarkGraph_NeighborIDs(b *testing.B) {
	b.ReportAllocs()
	g := benchGraph(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("v0")
	}
}

func BenchmarkGraph_PredecessorIDs(b *testing.B) {
	b.ReportAllocs()
	g := benchGraph(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.PredecessorIDs("v0")
	}
}

func BenchmarkGraph_Clone(b *testing.B) {
	b.ReportAllocs()
	g := benchGraph(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
