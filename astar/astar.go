package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// ShortestPath runs A* from start to goal.
//
// The queue is ordered by actual distance + heuristic estimate; the actual
// distance travelled is tracked separately so Result.Length is a real road length.
// With an admissible, consistent heuristic the length equals Dijkstra's.
//
// Returns ErrNotFound when start/goal is absent or goal is unreachable,
// search.ErrNilGraph for a nil graph, or the context error on cancellation.
//
// Complexity: O((V + E) log V) worst case; typically far fewer settlements than Dijkstra.
func ShortestPath(g *core.Graph, start, goal geo.Location, opts ...Option) (*search.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := search.Endpoints(g, start, goal); err != nil {
		return nil, err
	}

	V := g.NumVertices()
	r := &runner{
		g:        g,
		options:  cfg,
		goal:     goal,
		actual:   make(map[geo.Location]float64, V),
		priority: make(map[geo.Location]float64, V),
		prev:     make(map[geo.Location]geo.Location, V),
		settled:  make(map[geo.Location]bool, V),
		pq:       search.NewQueue(V),
	}

	r.actual[start] = 0
	r.priority[start] = cfg.Heuristic(start, goal)
	r.pq.Push(start, r.priority[start])

	if err := r.process(); err != nil {
		return nil, err
	}

	return search.NewResult(g, r.prev, start, goal, r.visits)
}

// runner holds the mutable state of one A* execution.
type runner struct {
	g        *core.Graph
	options  Options
	goal     geo.Location
	actual   map[geo.Location]float64 // true accumulated length from start
	priority map[geo.Location]float64 // actual + heuristic; orders the queue
	prev     map[geo.Location]geo.Location
	settled  map[geo.Location]bool
	pq       *search.Queue
	visits   int
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}

		item, _ := r.pq.Pop()
		u := item.Loc
		if r.settled[u] {
			continue
		}

		r.visits++
		r.options.OnVisit(u)
		if u == r.goal {
			return nil
		}

		r.settled[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax compares combined priorities and propagates actual distances.
func (r *runner) relax(u geo.Location) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %s: %w", u, err)
	}

	au := r.actual[u]
	for _, e := range edges {
		v := e.To
		if r.settled[v] || !r.options.FilterEdge(e) {
			continue
		}

		newActual := au + e.Length
		newPriority := newActual + r.options.Heuristic(v, r.goal)

		cur, seen := r.priority[v]
		if !seen {
			cur = math.Inf(1)
		}
		if newPriority >= cur {
			continue
		}

		r.priority[v] = newPriority
		r.actual[v] = newActual
		r.prev[v] = u
		r.pq.Push(v, newPriority)
	}

	return nil
}
