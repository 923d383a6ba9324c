// Package dijkstra defines configuration options and errors for
// Dijkstra's shortest-path search on a core.Graph.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/search"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNotFound is search.ErrNotFound, re-exported for callers that only import dijkstra.
	ErrNotFound = search.ErrNotFound

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Ctx         – cancellation; checked once per queue pop.
// OnVisit     – visitation callback, once per settled intersection.
// MaxDistance – stop once the closest unsettled intersection is farther than this.
// FilterEdge  – skip road segments for which it returns false.
type Options struct {
	Ctx         context.Context
	OnVisit     search.Visitor
	MaxDistance float64
	FilterEdge  func(e core.Edge) bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:         context.Background().
//   - OnVisit:     no-op.
//   - MaxDistance: +Inf (explore all reachable).
//   - FilterEdge:  accept every edge.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     search.NoopVisitor,
		MaxDistance: math.Inf(1),
		FilterEdge:  func(core.Edge) bool { return true },
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

// WithMaxDistance sets a maximum distance threshold.
// Intersections whose shortest distance exceeds max are not explored.
// A negative or NaN max panics with ErrBadMaxDistance when the option is applied.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance)
		}
		o.MaxDistance = max
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
