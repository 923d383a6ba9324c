// SPDX-License-Identifier: MIT
// Package: roadgraph/builder
//
// impl_path.go - Path(n): one-way chain Cell(0,0) → Cell(0,1) → … → Cell(0,n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 1
	pathRoadName    = "Chain Rd"
)

// Path returns a Constructor that builds a one-way chain of n intersections.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		g.AddVertex(cfg.cell(0, 0))
		for i := 1; i < n; i++ {
			prev, cur := cfg.cell(0, i-1), cfg.cell(0, i)
			g.AddVertex(cur)
			if err := link(g, cfg, methodPath, prev, cur, pathRoadName); err != nil {
				return err
			}
		}

		return nil
	}
}
