// SPDX-License-Identifier: MIT
// Package: roadgraph/builder
//
// impl_grid.go - Grid(rows, cols): two-way streets on a lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) sits at Cell(r,c); rows go north, columns go east.
//   • Each cell links Right then Up, in both directions (4 edges per adjacency).
//
// Determinism:
//   • Stable vertex order: row-major. Stable edge order: Right then Up per cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols two-way street lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(cfg.cell(r, c))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.cell(r, c)
				if c+1 < cols {
					v := cfg.cell(r, c+1)
					name := fmt.Sprintf("Row %d", r)
					if err := link(g, cfg, methodGrid, u, v, name); err != nil {
						return err
					}
					if err := link(g, cfg, methodGrid, v, u, name); err != nil {
						return err
					}
				}
				if r+1 < rows {
					v := cfg.cell(r+1, c)
					name := fmt.Sprintf("Column %d", c)
					if err := link(g, cfg, methodGrid, u, v, name); err != nil {
						return err
					}
					if err := link(g, cfg, methodGrid, v, u, name); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
