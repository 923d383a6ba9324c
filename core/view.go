// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (same intersections, fewer road segments).
//
// Views never mutate the input Graph. Every vertex is kept, so a route that
// needed a dropped segment simply becomes unreachable in the view.

package core

// EdgeView returns a new Graph with every vertex of g and only the edges for which
// keep returns true. A nil keep yields a Clone.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func EdgeView(g *Graph, keep func(Edge) bool) *Graph {
	return g.cloneWith(keep)
}

// RoadTypeView keeps only segments whose RoadType is one of types.
// With no types it is a Clone.
//
// Typical use: a car network without footway/cycleway segments.
func RoadTypeView(g *Graph, types ...string) *Graph {
	if len(types) == 0 {
		return g.Clone()
	}
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}

	return EdgeView(g, func(e Edge) bool {
		_, ok := allowed[e.RoadType]
		return ok
	})
}
