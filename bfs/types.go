// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/search"
)

// Sentinel errors for BFS execution.
var (
	// ErrNotFound is search.ErrNotFound, re-exported for callers that only import bfs.
	ErrNotFound = search.ErrNotFound

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when ShortestPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per dequeued intersection.
	OnVisit search.Visitor

	// MaxDepth, if > 0, never enqueues intersections farther than MaxDepth hops.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterEdge can skip road segments by returning false.
	FilterEdge func(e core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op OnVisit
//   - no depth limit
//   - no filtering
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    search.NoopVisitor,
		MaxDepth:   0,
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

// WithOnVisit registers the visitation callback.
func WithOnVisit(fn search.Visitor) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
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
