package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// ShortestPath computes the route from start to goal with the minimum total length.
//
// Returns:
//
//   - *search.Result: path, its length, hop count and number of settled intersections.
//   - err: ErrNotFound if start/goal is absent or goal is unreachable (or beyond
//     MaxDistance); search.ErrNilGraph for a nil graph; the context error on cancellation.
//
// start == goal yields the single-element path [start].
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
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
		g:       g,
		options: cfg,
		goal:    goal,
		dist:    make(map[geo.Location]float64, V),
		prev:    make(map[geo.Location]geo.Location, V),
		settled: make(map[geo.Location]bool, V),
		pq:      search.NewQueue(V),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return search.NewResult(g, r.prev, start, goal, r.visits)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph                   // The input graph; read-only within Dijkstra.
	options Options                       // Configuration options.
	goal    geo.Location                  // Stop once this is settled.
	dist    map[geo.Location]float64      // Best known distance from start; absent means +Inf.
	prev    map[geo.Location]geo.Location // Predecessor on the best known path.
	settled map[geo.Location]bool         // Finalized intersections.
	pq      *search.Queue                 // Lazy decrease-key min queue.
	visits  int
}

// init seeds the queue with start at distance 0.
func (r *runner) init(start geo.Location) {
	r.dist[start] = 0
	r.pq.Push(start, 0)
}

// distance returns the tentative distance of loc, +Inf when never reached.
func (r *runner) distance(loc geo.Location) float64 {
	if d, ok := r.dist[loc]; ok {
		return d
	}

	return math.Inf(1)
}

// process repeatedly settles the closest unsettled intersection.
//
// Loop termination conditions:
//
//   - The goal is settled.
//   - The queue becomes empty (goal unreachable).
//   - The minimum distance in the queue exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}

		item, _ := r.pq.Pop()
		u := item.Loc

		// stale entry for an already finalized intersection
		if r.settled[u] {
			continue
		}
		if item.Priority > r.options.MaxDistance {
			break
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

// relax improves distances to every unsettled neighbor of u through the
// specific edge u→neighbor.
func (r *runner) relax(u geo.Location) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %s: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v := e.To
		if r.settled[v] || !r.options.FilterEdge(e) {
			continue
		}

		newDist := du + e.Length
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict "<" keeps the first-found predecessor on ties
		if newDist >= r.distance(v) {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		// older entries for v stay queued and are skipped once v is settled
		r.pq.Push(v, newDist)
	}

	return nil
}
