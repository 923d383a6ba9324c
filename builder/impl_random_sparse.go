// SPDX-License-Identifier: MIT
// Package: roadgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Intersections are scattered uniformly inside an n·spacing square from origin.
//   - Each ordered pair (i,j), i≠j, becomes a directed edge with probability p.
//
// Determinism:
//   - Placement order i asc, then trial order i asc, j asc; fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random directed road network.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		span := float64(n) * cfg.spacing
		locs := make([]geo.Location, n)
		for i := range locs {
			locs[i] = geo.New(
				cfg.origin.Lat+cfg.rng.Float64()*span,
				cfg.origin.Lon+cfg.rng.Float64()*span,
			)
			g.AddVertex(locs[i])
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				name := fmt.Sprintf("Road %d-%d", i, j)
				if err := link(g, cfg, methodRandomSparse, locs[i], locs[j], name); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
