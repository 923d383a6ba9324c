// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// BenchmarkAddEdge measures appending fan-out edges to a single hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	hub := geo.New(0, 0)
	g.AddVertex(hub)
	to := geo.New(1, 1)
	g.AddVertex(to)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(hub, to, "Ring Rd", "primary", float64(i%100+1))
	}
}

// BenchmarkNeighbors measures the per-relaxation neighbor lookup.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	hub := geo.New(0, 0)
	g.AddVertex(hub)
	for i := 0; i < 16; i++ {
		to := geo.New(1, float64(i))
		g.AddVertex(to)
		_ = g.AddEdge(hub, to, "Ring Rd", "primary", 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(hub)
	}
}
