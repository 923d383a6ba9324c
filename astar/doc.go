// Package astar implements A* search between two intersections of a core.Graph.
//
// A* is Dijkstra with a goal bias: the queue is ordered by
//
//	f(v) = g(v) + h(v, goal)
//
// where g(v) is the road length travelled from start and h is a Heuristic.
// Two maps are kept per call: the actual distance g and the priority f. Relaxation
// compares priorities but propagates actual distances, so the returned Length never
// includes heuristic estimates.
//
// Heuristics
//
//   - StraightLine (default): great-circle distance. Admissible and consistent when
//     edge lengths are at least the straight distance between their endpoints.
//   - Zero: turns A* into Dijkstra; handy for cross-checking.
//   - Custom: WithHeuristic. An overestimating heuristic can return a longer route.
//
// The visitor runs once per settled intersection in settlement order.
package astar
