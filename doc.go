// Package roadgraph is a routing engine over road networks.
//
// Intersections are geo.Location values, road segments are directed core.Edges with
// a length in kilometres, and a core.Graph ties them together. Routes are computed
// under three cost models:
//
//   - bfs       fewest road segments (unweighted)
//   - dijkstra  shortest total length
//   - astar     shortest total length, guided by straight-line distance to the goal
//
// plus a contraction-hierarchy index for repeated queries on large networks.
//
// Layout:
//
//	geo/          Location value type, haversine distance (paulmach/orb)
//	core/         Edge, Node, Graph; clones and road-type views
//	search/       shared Result, Visitor, ErrNotFound, path reconstruction, priority queue
//	bfs/          breadth-first search
//	dijkstra/     Dijkstra's algorithm
//	astar/        A* with pluggable heuristics
//	contraction/  contraction hierarchies (LdDl/ch)
//	builder/      deterministic synthetic networks for tests and benchmarks
//	loader/       road-map text files and OpenStreetMap XML/PBF (paulmach/osm)
//	export/       GeoJSON output (paulmach/go.geojson)
//	server/       HTTP API (gorilla/mux)
//	cmd/roadroute command-line front end
//
// Every search keeps its state in per-call structures, so one fully built Graph can
// serve concurrent queries.
package roadgraph
