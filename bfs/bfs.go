// Package bfs finds the fewest-hop route between two intersections of a core.Graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// queueItem pairs an intersection with its BFS depth.
type queueItem struct {
	loc   geo.Location
	depth int
}

// walker encapsulates the mutable state of one BFS run.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	goal    geo.Location
	queue   []queueItem
	visited map[geo.Location]bool
	parent  map[geo.Location]geo.Location
	visits  int
}

// ShortestPath runs breadth-first search from start and returns the path to goal
// with the fewest road segments, ignoring segment lengths.
//
// Returns ErrNotFound when start or goal is not a vertex or goal is unreachable,
// search.ErrNilGraph for a nil graph, ErrOptionViolation for bad options,
// or the context error on cancellation.
//
// start == goal yields the single-element path [start].
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath(g *core.Graph, start, goal geo.Location, opts ...Option) (*search.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := search.Endpoints(g, start, goal); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make(map[geo.Location]bool, n),
		parent:  make(map[geo.Location]geo.Location, n),
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return search.NewResult(g, w.parent, start, goal, w.visits)
}

// enqueue marks loc visited and records its parent at discovery time,
// which is what makes the resulting path minimal in hops.
func (w *walker) enqueue(loc geo.Location, depth int, parent *geo.Location) {
	w.visited[loc] = true
	if parent != nil {
		w.parent[loc] = *parent
	}
	w.queue = append(w.queue, queueItem{loc: loc, depth: depth})
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.visits++
		w.opts.OnVisit(item.loc)

		if item.loc == w.goal {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.loc)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %s: %w", item.loc, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if w.visited[e.To] || !w.opts.FilterEdge(e) {
			continue
		}
		w.enqueue(e.To, next, &item.loc)
	}

	return nil
}
