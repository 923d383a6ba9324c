// Package server exposes a core.Graph over HTTP with gorilla/mux.
//
// Endpoints (all GET):
//
//	/healthz                        liveness probe
//	/graph/stats                    core.GraphStats as JSON
//	/route?from=lat,lon&to=lat,lon  route as JSON; algorithm=bfs|dijkstra|astar|ch (default dijkstra)
//	/route.geojson?...              same query, GeoJSON FeatureCollection
//
// Unparseable queries and unknown algorithms answer 400, unreachable or unknown
// intersections 404. The contraction index for algorithm=ch is built on first use.
//
// The graph must not be mutated while the server runs.
package server
