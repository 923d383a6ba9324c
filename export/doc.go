// Package export renders search results as GeoJSON for map viewers.
//
// A route becomes a FeatureCollection with:
//
//   - one LineString feature following the path (omitted when start == goal), with
//     properties algorithm, length_km, hops, visited and roads (distinct consecutive
//     road names along the path);
//   - two Point features tagged role=start and role=goal.
//
// Coordinates are written [lon, lat] as GeoJSON requires.
package export
