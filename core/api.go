// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a Graph for diagnostics and the HTTP surface.

package core

// GraphStats is an immutable-by-convention snapshot of a Graph's size.
type GraphStats struct {
	VertexCount   int            `json:"vertices"`
	EdgeCount     int            `json:"edges"`
	ParallelEdges int            `json:"parallel_edges"` // edges beyond the first between the same ordered pair
	SelfLoops     int            `json:"self_loops"`
	MaxOutDegree  int            `json:"max_out_degree"`
	RoadTypes     map[string]int `json:"road_types"` // edge count per road type
}

// Stats produces a snapshot of catalog sizes.
//
// Implementation:
//   - Single pass over every Node under the read lock.
//
// Complexity:
//   - Time O(V+E), Space O(number of road types).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.nodes),
		EdgeCount:   g.edgeCount,
		RoadTypes:   make(map[string]int),
	}
	for loc, n := range g.nodes {
		stats.ParallelEdges += len(n.outgoing) - len(n.order)
		if len(n.order) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(n.order)
		}
		for _, e := range n.outgoing {
			stats.RoadTypes[e.RoadType]++
			if e.To == loc {
				stats.SelfLoops++
			}
		}
	}

	return &stats
}
