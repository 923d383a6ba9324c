package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// ExampleGraph_AddEdge builds a two-way street and shows an invalid segment being rejected.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	a, b := geo.New(1, 1), geo.New(4, 1)
	g.AddVertex(a)
	g.AddVertex(b)

	_ = g.AddEdge(a, b, "Main St", "residential", 3)
	_ = g.AddEdge(b, a, "Main St", "residential", 3)

	err := g.AddEdge(a, b, "Main St", "residential", 0)
	fmt.Println(errors.Is(err, core.ErrInvalidEdge))
	fmt.Println(g.NumVertices(), g.NumEdges())
	// Output:
	// true
	// 2 2
}
