// Package contraction answers shortest-path queries through a contraction
// hierarchy built with github.com/LdDl/ch.
//
// Build copies a core.Graph into a ch.Graph once: every intersection gets a stable
// int64 label (its index in core.Graph.SortedVertices order), every distinct
// neighbor pair contributes its shortest segment, and the hierarchy is prepared.
// After that, Index.ShortestPath answers queries much faster than Dijkstra on large
// road networks, with the same Result contract except Visited, which is always 0.
//
// The index is a snapshot: edits to the source graph after Build are not seen.
//
// Complexity: Build is dominated by contraction (super-linear, road networks are
// friendly); queries touch a small upward search space from each endpoint.
package contraction
