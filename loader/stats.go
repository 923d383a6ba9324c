package loader

import "fmt"

// Stats summarizes one load.
type Stats struct {
	// Vertices is the number of intersections newly added to the graph.
	Vertices int
	// Edges is the number of directed segments added.
	Edges int
	// Skipped counts segments that were dropped: zero length or missing coordinates.
	Skipped int
}

func (s Stats) String() string {
	return fmt.Sprintf("vertices=%d edges=%d skipped=%d", s.Vertices, s.Edges, s.Skipped)
}
