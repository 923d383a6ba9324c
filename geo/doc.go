// Package geo defines Location, the coordinate value every roadgraph package keys on.
//
// What
//
//   - Location is a plain {Lat, Lon} pair in decimal degrees.
//   - Two Locations are the same intersection iff their coordinates are equal,
//     so Location is used directly as a map key by core, search and the algorithms.
//   - DistanceTo returns the great-circle (haversine) distance in kilometres and is
//     the only geometric capability the routing core consumes (A* heuristic, loaders).
//
// Interop
//
//	Point/FromPoint convert to and from github.com/paulmach/orb points, which keep
//	the GeoJSON axis order (lon, lat).
//
// Validity
//
//	A Location with NaN/Inf components or out-of-range degrees is not Valid.
//	core.Graph treats such a value the way a nil location is treated elsewhere:
//	AddVertex ignores it and reports false.
package geo
