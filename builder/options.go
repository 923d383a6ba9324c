// SPDX-License-Identifier: MIT
// Package: roadgraph/builder
//
// options.go - functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/roadgraph/geo"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithOrigin sets the south-west corner of generated networks.
func WithOrigin(loc geo.Location) BuilderOption {
	if !loc.Valid() {
		panic("builder: WithOrigin(invalid location)")
	}
	return func(c *builderConfig) { c.origin = loc }
}

// WithSpacing sets the lattice step in degrees.
func WithSpacing(deg float64) BuilderOption {
	if !(deg > 0) {
		panic("builder: WithSpacing must be > 0")
	}
	return func(c *builderConfig) { c.spacing = deg }
}

// WithRand provides an explicit RNG for stochastic builders.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDetour sets the range of the per-segment detour factor.
// min must be ≥ 1 so generated lengths never undercut the straight distance.
func WithDetour(min, max float64) BuilderOption {
	if min < 1 || max < min {
		panic("builder: WithDetour requires 1 <= min <= max")
	}
	return func(c *builderConfig) {
		c.detourMin = min
		c.detourMax = max
	}
}

// WithRoadType sets the road type recorded on generated edges.
func WithRoadType(t string) BuilderOption {
	if t == "" {
		panic("builder: WithRoadType(\"\")")
	}
	return func(c *builderConfig) { c.roadType = t }
}
