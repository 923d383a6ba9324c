package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/bfs"
	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// ExampleShortestPath shows BFS choosing the one-hop highway over the two-hop side streets.
func ExampleShortestPath() {
	a, b, c := geo.New(1, 1), geo.New(4, 1), geo.New(4, 2)
	g := core.NewGraph()
	g.AddVertex(a)
	g.AddVertex(b)
	g.AddVertex(c)
	_ = g.AddEdge(a, b, "1st Ave", "residential", 1)
	_ = g.AddEdge(b, c, "2nd Ave", "residential", 1)
	_ = g.AddEdge(a, c, "Expressway", "motorway", 5)

	res, err := bfs.ShortestPath(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Hops, res.Length)
	// Output:
	// [1,1 4,2] 1 5
}
