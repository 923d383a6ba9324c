package contraction

import (
	"fmt"
	"sync"

	"github.com/LdDl/ch"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// ErrNotFound is search.ErrNotFound, re-exported for callers that only import contraction.
var ErrNotFound = search.ErrNotFound

// Index is a prepared contraction hierarchy over a snapshot of a core.Graph.
type Index struct {
	mu     sync.Mutex // ch.Graph queries share internal buffers
	g      *core.Graph
	h      ch.Graph
	labels map[geo.Location]int64
	locs   []geo.Location // label → location
	edges  int
}

// Build copies g into a contraction hierarchy. Self-loops are ignored since
// they never lie on a shortest path.
func Build(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}

	locs := g.SortedVertices()
	idx := &Index{
		g:      g,
		h:      ch.Graph{},
		labels: make(map[geo.Location]int64, len(locs)),
		locs:   locs,
	}
	for i, l := range locs {
		label := int64(i)
		idx.labels[l] = label
		if err := idx.h.CreateVertex(label); err != nil {
			return nil, fmt.Errorf("contraction: create vertex %s: %w", l, err)
		}
	}

	for _, l := range locs {
		edges, err := g.Neighbors(l)
		if err != nil {
			return nil, fmt.Errorf("contraction: neighbors of %s: %w", l, err)
		}
		for _, e := range edges {
			if e.From == e.To {
				continue
			}
			if err := idx.h.AddEdge(idx.labels[e.From], idx.labels[e.To], e.Length); err != nil {
				return nil, fmt.Errorf("contraction: add edge %s→%s: %w", e.From, e.To, err)
			}
			idx.edges++
		}
	}

	if len(locs) > 0 {
		idx.h.PrepareContractionHierarchies()
	}

	return idx, nil
}

// NumVertices returns the number of labelled intersections.
func (idx *Index) NumVertices() int { return len(idx.locs) }

// NumEdges returns the number of edges copied into the hierarchy
// (one per distinct neighbor pair).
func (idx *Index) NumEdges() int { return idx.edges }

// Label returns the hierarchy label of loc.
func (idx *Index) Label(loc geo.Location) (int64, bool) {
	l, ok := idx.labels[loc]
	return l, ok
}

// ShortestPath returns the minimum-length route from start to goal.
// Length is recomputed from the source graph's edges, so it matches
// search.PathLength exactly.
func (idx *Index) ShortestPath(start, goal geo.Location) (*search.Result, error) {
	src, ok := idx.labels[start]
	if !ok {
		return nil, fmt.Errorf("%w: start %s is not a vertex", ErrNotFound, start)
	}
	dst, ok := idx.labels[goal]
	if !ok {
		return nil, fmt.Errorf("%w: goal %s is not a vertex", ErrNotFound, goal)
	}
	if src == dst {
		return &search.Result{Path: []geo.Location{start}}, nil
	}

	idx.mu.Lock()
	cost, labels := idx.h.ShortestPath(src, dst)
	idx.mu.Unlock()
	if cost < 0 || len(labels) == 0 {
		return nil, fmt.Errorf("%w: %s unreachable from %s", ErrNotFound, goal, start)
	}

	path := make([]geo.Location, len(labels))
	for i, l := range labels {
		path[i] = idx.locs[l]
	}
	length, err := search.PathLength(idx.g, path)
	if err != nil {
		return nil, err
	}

	return &search.Result{Path: path, Length: length, Hops: len(path) - 1}, nil
}
