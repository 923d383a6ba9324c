package search

import (
	"errors"

	"github.com/katalvlaran/roadgraph/geo"
)

// Sentinel errors shared by all search algorithms.
var (
	// ErrNotFound is returned when start or goal is not a vertex, or goal is unreachable.
	ErrNotFound = errors.New("search: path not found")

	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")
)

// Visitor observes a search: it is called once per node dequeue/settlement,
// in settlement order. It has no access to search state and cannot influence
// the outcome.
type Visitor func(loc geo.Location)

// NoopVisitor is the default Visitor.
func NoopVisitor(geo.Location) {}

// Result is the outcome of a successful start→goal search.
type Result struct {
	// Path lists intersections from start to goal, both included.
	Path []geo.Location

	// Length is the summed length of the traversed edges.
	// For BFS it is the length of the fewest-hop path found, not a minimum.
	Length float64

	// Hops is the number of edges on Path.
	Hops int

	// Visited counts Visitor invocations: one per dequeued (settled) intersection.
	Visited int
}
