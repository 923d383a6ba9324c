// SPDX-License-Identifier: MIT
// Package: roadgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin    = 32.8801,-117.2340
//   • spacing   = 0.001 degrees (~111 m of latitude)
//   • rng       = nil (pure/deterministic unless seeded)
//   • detour    = [1,1] (length equals straight distance)
//   • roadType  = "residential"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/roadgraph/geo"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	origin    geo.Location
	spacing   float64
	rng       *rand.Rand
	detourMin float64
	detourMax float64
	roadType  string
}

const (
	defaultOriginLat = 32.8801
	defaultOriginLon = -117.2340
	defaultSpacing   = 0.001
	defaultDetour    = 1.0
	defaultRoadType  = "residential"
)

// newBuilderConfig applies all options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin:    geo.New(defaultOriginLat, defaultOriginLon),
		spacing:   defaultSpacing,
		detourMin: defaultDetour,
		detourMax: defaultDetour,
		roadType:  defaultRoadType,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cell returns the lattice point (r, c) relative to origin.
func (c builderConfig) cell(r, col int) geo.Location {
	return geo.New(c.origin.Lat+float64(r)*c.spacing, c.origin.Lon+float64(col)*c.spacing)
}

// length returns the segment length for from→to: straight distance × detour.
// The detour is sampled only when a range and an RNG are both present.
func (c builderConfig) length(from, to geo.Location) float64 {
	f := c.detourMin
	if c.detourMax > c.detourMin && c.rng != nil {
		f += c.rng.Float64() * (c.detourMax - c.detourMin)
	}

	return from.DistanceTo(to) * f
}
