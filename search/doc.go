// Package search holds the pieces shared by the bfs, dijkstra and astar packages:
// the visitation callback port, the Result type, the ErrNotFound outcome,
// predecessor-map path reconstruction and a deterministic min-priority queue.
//
// Not found is not a fault
//
//	A search whose start or goal is not a vertex, or whose goal is unreachable,
//	returns ErrNotFound. Callers are expected to branch on errors.Is(err, ErrNotFound)
//	the same way they would on an empty result; it never indicates a broken graph.
//
// Determinism
//
//	Queue orders entries by priority, then by insertion sequence, so two entries
//	with equal priority always pop in the order they were pushed.
package search
