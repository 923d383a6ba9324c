// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - SortedVertices() returns Locations ordered by (Lat, Lon) ascending.
//
// Concurrency:
//   - AddVertex under the write lock, queries under the read lock.

package core

import (
	"sort"

	"github.com/katalvlaran/roadgraph/geo"
)

// AddVertex inserts an intersection if it is missing.
//
// Implementation:
//   - Stage 1: Reject invalid Locations (the "null location" of this package).
//   - Stage 2: Under the write lock, check presence; if missing, register a fresh Node.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op that reports false.
//   - Never fails; the bool is the only signal.
//
// Returns:
//   - bool: true iff a Node was added.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(loc geo.Location) bool {
	if !loc.Valid() {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[loc]; exists {
		return false
	}
	g.nodes[loc] = newNode(loc)

	return true
}

// HasVertex reports whether loc is an intersection of the graph.
func (g *Graph) HasVertex(loc geo.Location) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[loc]

	return ok
}

// Node returns the vertex stored at loc.
//
// The returned Node must be treated as read-only and must not be used while the
// graph is still being mutated.
func (g *Graph) Node(loc geo.Location) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[loc]

	return n, ok
}

// NumVertices returns the number of intersections.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Vertices returns a set copy of all intersections.
// Mutating the returned map does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() map[geo.Location]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[geo.Location]struct{}, len(g.nodes))
	for loc := range g.nodes {
		out[loc] = struct{}{}
	}

	return out
}

// SortedVertices returns all intersections ordered by geo.Less.
// Use it wherever a reproducible enumeration is required (exports, index building).
// Complexity: O(V log V).
func (g *Graph) SortedVertices() []geo.Location {
	g.mu.RLock()
	out := make([]geo.Location, 0, len(g.nodes))
	for loc := range g.nodes {
		out = append(out, loc)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return geo.Less(out[i], out[j]) })

	return out
}
