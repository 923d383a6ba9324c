// Package core defines the road network model: Edge, Node and Graph.
//
// What
//
//   - Graph owns one Node per intersection, keyed by its geo.Location.
//   - Each Node owns its outgoing Edges (road segments) and a neighbor index that maps
//     every distinct neighbor Location to the shortest Edge leading to it.
//   - The graph is directed: an Edge A→B says nothing about B→A.
//   - Edges are values; once stored they are never modified.
//
// Search state
//
//	Nodes carry no tentative distances, visited flags or parents. Every search
//	algorithm (bfs, dijkstra, astar) keeps that state in its own per-call maps, which
//	is what makes concurrent queries against one Graph safe.
//
// Construction
//
//	g := core.NewGraph()
//	a, b := geo.New(1, 1), geo.New(4, 1)
//	g.AddVertex(a)
//	g.AddVertex(b)
//	if err := g.AddEdge(a, b, "Main St", "residential", 0.3); err != nil {
//	    // errors.Is(err, core.ErrInvalidEdge)
//	}
//
// Views
//
//	Clone deep-copies a Graph. EdgeView and RoadTypeView copy every intersection but
//	only the accepted segments, e.g. a drivable network without footways. The source
//	graph is never modified.
//
// Concurrency
//
//	All Graph methods take an internal sync.RWMutex: mutations take the write lock,
//	queries the read lock. Mutating the graph while a search runs is not supported;
//	build first, then query from as many goroutines as needed.
//
// Errors
//
//   - ErrInvalidEdge     AddEdge rejected its arguments; the graph is unchanged.
//   - ErrVertexNotFound  a read query referenced an unknown Location.
package core
