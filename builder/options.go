// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// options.go - functional options for Generate.
//
// Option constructors validate and panic on meaningless inputs; Generate
// itself only returns errors.

package builder

import (
	"math/rand"
)

// BuilderOption customizes Generate by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The caller owns it; Generate draws from
// it and never reseeds. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithExtraDegree sets the expected number of extra links per node.
// Zero keeps only the ring and cross links. Panics if deg < 0.
func WithExtraDegree(deg float64) BuilderOption {
	if deg < 0 {
		panic("builder: WithExtraDegree(deg<0)")
	}

	return func(c *builderConfig) {
		c.extraDegree = deg
	}
}

// WithIDScheme overrides the automatic center ID scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithDistanceFn overrides the distance distribution. Panics on nil.
func WithDistanceFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}

	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithCapacityFn overrides the capacity distribution. Panics on nil.
func WithCapacityFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}

	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}
