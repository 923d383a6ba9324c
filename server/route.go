package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadgraph/astar"
	"github.com/katalvlaran/roadgraph/bfs"
	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// Algorithm names a routing strategy.
type Algorithm string

const (
	BFS         Algorithm = "bfs"
	Dijkstra    Algorithm = "dijkstra"
	AStar       Algorithm = "astar"
	Contraction Algorithm = "ch"
)

// ErrUnknownAlgorithm is returned for an algorithm name outside bfs|dijkstra|astar|ch.
var ErrUnknownAlgorithm = errors.New("server: unknown algorithm")

// ParseAlgorithm is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case BFS, Dijkstra, AStar, Contraction:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Route runs algo from start to goal. The visitor, when non-nil, observes
// bfs/dijkstra/astar settlements; the contraction index does not report them.
func (s *Server) Route(ctx context.Context, algo Algorithm, start, goal geo.Location, visit search.Visitor) (*search.Result, error) {
	switch algo {
	case BFS:
		return bfs.ShortestPath(s.g, start, goal, bfs.WithContext(ctx), bfs.WithOnVisit(visit))
	case Dijkstra:
		return dijkstra.ShortestPath(s.g, start, goal, dijkstra.WithContext(ctx), dijkstra.WithOnVisit(visit))
	case AStar:
		return astar.ShortestPath(s.g, start, goal, astar.WithContext(ctx), astar.WithOnVisit(visit))
	case Contraction:
		idx, err := s.index()
		if err != nil {
			return nil, err
		}
		return idx.ShortestPath(start, goal)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
}
