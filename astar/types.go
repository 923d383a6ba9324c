package astar

import (
	"context"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// ErrNotFound is search.ErrNotFound, re-exported for callers that only import astar.
var ErrNotFound = search.ErrNotFound

// Heuristic estimates the remaining cost from an intersection to the goal.
// It must never overestimate the true remaining road length (admissible) and
// should satisfy h(u) ≤ len(u→v) + h(v) (consistent) for optimal results.
type Heuristic func(from, goal geo.Location) float64

// StraightLine is the great-circle distance in kilometres. It is admissible
// whenever edge lengths are kilometres of at least the straight distance,
// which holds for every loader and builder in this module.
func StraightLine(from, goal geo.Location) float64 { return from.DistanceTo(goal) }

// Zero never estimates anything; with it A* settles exactly like Dijkstra.
func Zero(_, _ geo.Location) float64 { return 0 }

// Options configures A*.
type Options struct {
	Ctx        context.Context
	OnVisit    search.Visitor
	Heuristic  Heuristic
	FilterEdge func(e core.Edge) bool
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// DefaultOptions returns background context, no-op visitor, StraightLine, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    search.NoopVisitor,
		Heuristic:  StraightLine,
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visitation callback. It runs once per settled
// intersection; stale queue entries for an already settled intersection are
// skipped without being reported.
func WithOnVisit(fn search.Visitor) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithHeuristic replaces the default StraightLine heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithFilterEdge skips road segments for which fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}
