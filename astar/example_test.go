// Package astar_test provides examples demonstrating how to use the A* search.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/astar"
	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/geo"
)

// ExampleShortestPath demonstrates A* with the default straight-line heuristic
// on segments measured in great-circle kilometres.
func ExampleShortestPath() {
	a, b, c := geo.New(1, 1), geo.New(4, 1), geo.New(4, 2)
	g := core.NewGraph()
	for _, l := range []geo.Location{a, b, c} {
		g.AddVertex(l)
	}
	_ = g.AddEdge(a, b, "1st Ave", "residential", a.DistanceTo(b))
	_ = g.AddEdge(b, c, "2nd Ave", "residential", b.DistanceTo(c))
	_ = g.AddEdge(a, c, "Scenic Route", "tertiary", 3*a.DistanceTo(c))

	res, err := astar.ShortestPath(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ref, _ := dijkstra.ShortestPath(g, a, c)

	fmt.Println(res.Path, res.Hops)
	fmt.Println(res.Length == ref.Length)
	// Output:
	// [1,1 4,1 4,2] 2
	// true
}
