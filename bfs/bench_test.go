package bfs_test

import (
	"testing"

	"github.com/katalvlaran/roadgraph/bfs"
	"github.com/katalvlaran/roadgraph/builder"
)

// BenchmarkBFS_Grid measures corner-to-corner BFS on a 100×100 lattice.
func BenchmarkBFS_Grid(b *testing.B) {
	const n = 100
	g, err := builder.BuildGraph(nil, builder.Grid(n, n))
	if err != nil {
		b.Fatal(err)
	}
	start, goal := builder.Cell(0, 0), builder.Cell(n-1, n-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, start, goal)
	}
}

// BenchmarkBFS_Chain measures BFS on a long one-way chain.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10000
	g, err := builder.BuildGraph(nil, builder.Path(n))
	if err != nil {
		b.Fatal(err)
	}
	start, goal := builder.Cell(0, 0), builder.Cell(0, n-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, start, goal)
	}
}
