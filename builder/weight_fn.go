// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// weight_fn.go - integer weight distributions for links.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws one link weight from rng. It must consume rng in a fixed
// way so that a seed fully determines the case.
type WeightFn func(rng *rand.Rand) int64

// UniformWeightFn samples uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		return min + rng.Int63n(max-min+1)
	}
}

// ConstantWeightFn always yields value and never touches rng.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(*rand.Rand) int64 { return value }
}
