// Package dijkstra implements Dijkstra's shortest-path search between two
// intersections of a core.Graph, minimizing total road length.
//
// Dijkstra settles intersections in order of increasing distance from start
// using a min-priority queue, relaxing each outgoing road segment with that
// segment's own length, and stops as soon as the goal is settled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each intersection is settled at most once.
//   - Each relaxation may push a new queue entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and settled maps (all per call).
//   - O(E) worst-case for entries in the queue under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved distances are pushed as duplicates and stale
//     entries are skipped when popped.
//   - Equal distances pop in insertion order (search.Queue), so results are reproducible.
//   - Parallel road segments are collapsed to the shortest one by core.Graph.Neighbors.
//   - The visitor runs once per settled intersection, never for stale entries.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(g, from, to, dijkstra.WithMaxDistance(25))
//	if errors.Is(err, dijkstra.ErrNotFound) {
//	    // unreachable within 25 km
//	}
//	fmt.Printf("%.2f km over %d segments\n", res.Length, res.Hops)
package dijkstra
