package astar_test

import (
	"testing"

	"github.com/katalvlaran/roadgraph/astar"
	"github.com/katalvlaran/roadgraph/builder"
)

// BenchmarkAStar_Grid measures corner-to-corner search on a 100×100 lattice
// with random detours; compare against BenchmarkDijkstra_Grid.
func BenchmarkAStar_Grid(b *testing.B) {
	const n = 100
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithDetour(1, 1.5)},
		builder.Grid(n, n),
	)
	if err != nil {
		b.Fatal(err)
	}
	start, goal := builder.Cell(0, 0), builder.Cell(n-1, n-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.ShortestPath(g, start, goal)
	}
}
