// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Node and Graph declarations, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/roadgraph/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates AddEdge was called with a missing endpoint,
	// an absent road type, or a non-positive / non-finite length.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrVertexNotFound indicates a query referenced a Location that is not a vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a directed road segment From→To.
//
// Length is in kilometres when the graph is produced by the loaders,
// but core only requires it to be finite and strictly positive.
type Edge struct {
	// From is the start intersection.
	From geo.Location

	// To is the end intersection.
	To geo.Location

	// RoadName is the human-readable street name; may be empty for unnamed segments.
	RoadName string

	// RoadType is the road classification (e.g. "residential", "motorway").
	RoadType string

	// Length is the segment length, always > 0.
	Length float64
}

// Node is a graph vertex: an intersection and the road segments leaving it.
//
// neighbors maps each distinct neighbor to the index (in outgoing) of the shortest
// edge reaching it, so relaxation always reads the weight of the specific edge
// between the two intersections. order keeps neighbors in first-insertion order.
type Node struct {
	location  geo.Location
	outgoing  []Edge
	neighbors map[geo.Location]int
	order     []geo.Location
}

// Graph is the in-memory directed road network.
//
// mu guards nodes, edgeCount and every Node reachable from nodes.
type Graph struct {
	mu sync.RWMutex

	nodes     map[geo.Location]*Node
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[geo.Location]*Node),
	}
}

// newNode allocates an edge-less Node for loc.
func newNode(loc geo.Location) *Node {
	return &Node{
		location:  loc,
		neighbors: make(map[geo.Location]int),
	}
}
