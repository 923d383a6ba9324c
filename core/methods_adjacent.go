// File: methods_adjacent.go
// Role: Neighbor queries used by every search algorithm, and Node accessors.
//
// Determinism:
//   - Neighbors() lists one edge per distinct neighbor in first-insertion order,
//     so BFS layering and priority-queue tie-breaks are reproducible.

package core

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/geo"
)

// Neighbors returns, for every distinct neighbor of loc, the shortest edge leading to it.
//
// Returns:
//   - []Edge: fresh slice; safe to keep after the call.
//   - error: ErrVertexNotFound if loc is not a vertex.
//
// Complexity: O(deg(loc)).
func (g *Graph) Neighbors(loc geo.Location) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, loc)
	}

	return n.Neighbors(), nil
}

// addEdge registers e on n. The caller holds the graph write lock.
func (n *Node) addEdge(e Edge) {
	n.outgoing = append(n.outgoing, e)
	idx := len(n.outgoing) - 1

	cur, seen := n.neighbors[e.To]
	if !seen {
		n.neighbors[e.To] = idx
		n.order = append(n.order, e.To)
		return
	}
	if e.Length < n.outgoing[cur].Length {
		n.neighbors[e.To] = idx
	}
}

// Location returns the intersection this Node represents.
func (n *Node) Location() geo.Location { return n.location }

// OutDegree returns the number of distinct neighbors.
func (n *Node) OutDegree() int { return len(n.order) }

// OutgoingEdges returns a copy of every edge leaving n, parallel edges included.
func (n *Node) OutgoingEdges() []Edge {
	out := make([]Edge, len(n.outgoing))
	copy(out, n.outgoing)

	return out
}

// Neighbors returns the shortest edge to each distinct neighbor, in first-insertion order.
func (n *Node) Neighbors() []Edge {
	out := make([]Edge, 0, len(n.order))
	for _, to := range n.order {
		out = append(out, n.outgoing[n.neighbors[to]])
	}

	return out
}

// EdgeTo returns the shortest edge from n to the given neighbor.
func (n *Node) EdgeTo(to geo.Location) (Edge, bool) {
	idx, ok := n.neighbors[to]
	if !ok {
		return Edge{}, false
	}

	return n.outgoing[idx], true
}
