// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for roadgraph/core tests.
//
// Purpose:
//   - Provide small deterministic intersections and a builder for tiny road networks.
//   - Keep assertions on testify/require.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// Common intersections used across core tests.
var (
	LocA = geo.New(1, 1)
	LocB = geo.New(4, 1)
	LocC = geo.New(4, 2)
	LocD = geo.New(7, 3)
	LocX = geo.New(-10, -10)
)

// Common road attributes (avoid magic strings in test bodies).
const (
	RoadMain        = "Main St"
	TypeResidential = "residential"
)

// segment is one directed road for buildGraph.
type segment struct {
	from, to geo.Location
	length   float64
}

// buildGraph registers every endpoint and segment, failing the test on any error.
func buildGraph(t *testing.T, segs ...segment) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, s := range segs {
		g.AddVertex(s.from)
		g.AddVertex(s.to)
		require.NoError(t, g.AddEdge(s.from, s.to, RoadMain, TypeResidential, s.length))
	}

	return g
}
