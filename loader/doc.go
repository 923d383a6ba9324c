// Package loader fills a core.Graph from road data on disk or in memory.
//
// Two sources are supported:
//
//   - Road-map text files, one directed segment per line:
//
//     lat1 lon1 lat2 lon2 "Road Name" roadtype
//
//     Blank lines and lines starting with '#' are ignored. The segment length is
//     the great-circle distance between its endpoints in kilometres.
//
//   - OpenStreetMap extracts (XML or PBF) read through github.com/paulmach/osm.
//     Every way tagged highway=* (optionally restricted with WithHighways) becomes a
//     chain of segments between consecutive way nodes; two-way unless tagged oneway.
//
// Loaders add into an existing graph so several sources can be merged. They report
// what they added through Stats.
package loader
