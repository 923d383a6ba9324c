// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, NumEdges, Edge, Edges, OutgoingEdges.
//
// Determinism:
//   - Edges() lists edges grouped by source in SortedVertices() order,
//     and in insertion order within one source.
//
// Concurrency:
//   - AddEdge under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadgraph/geo"
)

// AddEdge adds the directed road segment from→to.
//
// Steps:
//  1. Validate length (finite, > 0) and roadType (non-empty).
//  2. Lock, verify both endpoints are existing vertices.
//  3. Append the Edge to from's outgoing list, update from's neighbor index
//     when this is the first or a strictly shorter edge to `to`.
//  4. Increment the edge count.
//
// Every failure wraps ErrInvalidEdge and happens before any mutation.
// Parallel edges and self-loops are accepted; searches always use the
// shortest of the parallel edges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to geo.Location, roadName, roadType string, length float64) error {
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalidEdge, length)
	}
	if roadType == "" {
		return fmt.Errorf("%w: road type is empty", ErrInvalidEdge)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: start %s is not a vertex", ErrInvalidEdge, from)
	}
	if _, ok = g.nodes[to]; !ok {
		return fmt.Errorf("%w: end %s is not a vertex", ErrInvalidEdge, to)
	}

	src.addEdge(Edge{From: from, To: to, RoadName: roadName, RoadType: roadType, Length: length})
	g.edgeCount++

	return nil
}

// NumEdges returns the number of road segments, parallel edges included.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edge returns the shortest edge from→to, if any.
func (g *Graph) Edge(from, to geo.Location) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[from]
	if !ok {
		return Edge{}, false
	}

	return n.EdgeTo(to)
}

// OutgoingEdges returns a copy of every edge leaving loc, in insertion order.
// Returns ErrVertexNotFound for an unknown Location.
func (g *Graph) OutgoingEdges(loc geo.Location) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, loc)
	}

	return n.OutgoingEdges(), nil
}

// Edges returns every edge of the graph.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	locs := g.SortedVertices()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, loc := range locs {
		if n, ok := g.nodes[loc]; ok {
			out = append(out, n.outgoing...)
		}
	}

	return out
}
