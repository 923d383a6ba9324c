package loader

import (
	"errors"
)

var (
	// ErrMalformedLine is returned for a road-map line that cannot be parsed.
	ErrMalformedLine = errors.New("loader: malformed road-map line")

	// ErrUnknownFormat is returned when an OSM file extension is not .osm, .xml or .pbf.
	ErrUnknownFormat = errors.New("loader: unknown OSM format")

	// ErrNilGraph is returned when the destination graph is nil.
	ErrNilGraph = errors.New("loader: graph is nil")
)
