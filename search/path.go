package search

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// Reconstruct walks prev from goal back to start and returns the start→goal path.
//
// prev[v] == u means the search reached v from u; start has no entry.
// If goal != start and goal has no predecessor, the goal was never reached and
// ErrNotFound is returned instead of a partial path.
//
// Complexity: O(len(path)).
func Reconstruct(prev map[geo.Location]geo.Location, start, goal geo.Location) ([]geo.Location, error) {
	if goal == start {
		return []geo.Location{start}, nil
	}
	if _, ok := prev[goal]; !ok {
		return nil, ErrNotFound
	}

	// build reversed path
	path := []geo.Location{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			// chain broken before reaching start
			return nil, ErrNotFound
		}
		path = append(path, p)
		cur = p
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: predecessor cycle at %s", ErrNotFound, cur)
		}
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathLength sums the lengths of the edges along path, using the shortest
// edge between each consecutive pair.
// Returns ErrNotFound if two consecutive Locations are not connected.
func PathLength(g *core.Graph, path []geo.Location) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total float64
	for i := 1; i < len(path); i++ {
		e, ok := g.Edge(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %s→%s", ErrNotFound, path[i-1], path[i])
		}
		total += e.Length
	}

	return total, nil
}

// NewResult reconstructs the path and fills a Result.
// Every algorithm finishes through here.
func NewResult(g *core.Graph, prev map[geo.Location]geo.Location, start, goal geo.Location, visited int) (*Result, error) {
	path, err := Reconstruct(prev, start, goal)
	if err != nil {
		return nil, err
	}
	length, err := PathLength(g, path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:    path,
		Length:  length,
		Hops:    len(path) - 1,
		Visited: visited,
	}, nil
}

// Endpoints validates g and resolves both endpoints.
// Absent endpoints are an ordinary ErrNotFound outcome.
func Endpoints(g *core.Graph, start, goal geo.Location) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %s is not a vertex", ErrNotFound, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: goal %s is not a vertex", ErrNotFound, goal)
	}

	return nil
}
