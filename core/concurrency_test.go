// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from one hub are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	hub := geo.New(0, 0)
	g.AddVertex(hub)

	const num = 200
	targets := make([]geo.Location, num)
	for i := range targets {
		targets[i] = geo.New(1, float64(i)/10)
		g.AddVertex(targets[i])
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(to geo.Location) {
			defer wg.Done()
			errs <- g.AddEdge(hub, to, RoadMain, TypeResidential, 1)
		}(targets[i])
	}
	wg.Wait()
	close(errs)
	// no *testing.T inside goroutines; collect and assert here
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(hub)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.NumEdges())
}

// TestConcurrentReaders runs many read-only queries against a finished graph.
func TestConcurrentReaders(t *testing.T) {
	g := buildGraph(t, segment{LocA, LocB, 1}, segment{LocB, LocC, 1}, segment{LocA, LocC, 5})

	var wg sync.WaitGroup
	counts := make([]int, 64)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			nbs, _ := g.Neighbors(LocA)
			counts[i] = len(nbs) + g.NumEdges() + len(g.Vertices())
		}(i)
	}
	wg.Wait()
	for _, c := range counts {
		require.Equal(t, 2+3+3, c)
	}
}
