// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies of a Graph, optionally dropping edges.
// Determinism:
//   - Outgoing edges are copied in their original order, so Neighbors() order and
//     parallel-edge resolution on the copy match the source.
// Concurrency:
//   - Read lock on the source only; the result is a fresh, unshared Graph.

package core

import "github.com/katalvlaran/roadgraph/geo"

// Clone returns a deep copy of g: same vertices, same edges in the same order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.cloneWith(nil)
}

// cloneWith copies every vertex and the edges accepted by keep (all when keep is nil).
// Edges are re-inserted through Node.addEdge so neighbor indexes are rebuilt
// for the surviving edges only.
func (g *Graph) cloneWith(keep func(Edge) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{nodes: make(map[geo.Location]*Node, len(g.nodes))}
	for loc := range g.nodes {
		out.nodes[loc] = newNode(loc)
	}
	for loc, n := range g.nodes {
		dst := out.nodes[loc]
		for _, e := range n.outgoing {
			if keep != nil && !keep(e) {
				continue
			}
			dst.addEdge(e)
			out.edgeCount++
		}
	}

	return out
}
