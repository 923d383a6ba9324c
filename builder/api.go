// SPDX-License-Identifier: MIT
// Package: roadgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// Constructor applies a deterministic graph mutation using the resolved builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from bopts,
// and applies all constructors in order. Constructor errors are wrapped with
// "BuildGraph: %w" and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Cell returns the Location Grid and Path assign to lattice cell (r, c)
// under the given options.
func Cell(r, c int, bopts ...BuilderOption) geo.Location {
	return newBuilderConfig(bopts...).cell(r, c)
}

// link adds from→to with a generated length and road name.
func link(g *core.Graph, cfg builderConfig, method string, from, to geo.Location, name string) error {
	l := cfg.length(from, to)
	if !(l > 0) {
		// coincident points; nothing to connect
		return nil
	}
	if err := g.AddEdge(from, to, name, cfg.roadType, l); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %v: %w", method, from, to, err, ErrConstructFailed)
	}

	return nil
}
