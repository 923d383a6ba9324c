// Package bfs provides breadth-first search over a core.Graph,
// returning the route with the fewest road segments between two intersections.
//
// What
//
//   - Explore intersections in non-decreasing hop count from start.
//   - Record each intersection's parent when it is first discovered (enqueued),
//     not when it is dequeued; this guarantees the minimum hop count.
//   - Stop as soon as the goal is dequeued.
//   - Edge lengths are ignored for ordering; Result.Length reports the length of
//     the route found, which need not be the shortest by distance.
//
// Determinism
//
//	core.Graph.Neighbors lists neighbors in first-insertion order and BFS enqueues
//	them in that order, so the visit sequence and the chosen path are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue, visited set, parent map; all scoped to one call)
//
// Usage
//
//	res, err := bfs.ShortestPath(g, from, to,
//	    bfs.WithOnVisit(func(loc geo.Location) { /* ... */ }),
//	    bfs.WithMaxDepth(50),
//	)
//	if errors.Is(err, bfs.ErrNotFound) {
//	    // no route
//	}
//
// Errors
//
//   - ErrNotFound           start/goal absent or goal unreachable.
//   - search.ErrNilGraph    nil graph.
//   - ErrOptionViolation    invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()             cancellation via WithContext.
package bfs
