// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// config.go - resolved generator configuration and its defaults.
//
// Defaults:
//   - rng         = nil (Generate fails with ErrNeedRandSource)
//   - extraDegree = DefaultExtraDegree
//   - distanceFn  = UniformWeightFn(MinDistance, MaxDistance)
//   - capacityFn  = UniformWeightFn(MinCapacity, MaxCapacity)
//   - idFn        = nil (letters up to 26 centers, decimal beyond)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	rng         *rand.Rand
	extraDegree float64
	distanceFn  WeightFn
	capacityFn  WeightFn
	idFn        IDFn
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		extraDegree: DefaultExtraDegree,
		distanceFn:  UniformWeightFn(MinDistance, MaxDistance),
		capacityFn:  UniformWeightFn(MinCapacity, MaxCapacity),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
