// SPDX-License-Identifier: MIT

package nearest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fibernet/nearest"
	"github.com/katalvlaran/fibernet/network"
)

// BenchmarkIndex_Nearest100 queries against the largest generated center set.
func BenchmarkIndex_Nearest100(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	cs := make([]network.ServiceCenter, 100)
	for i := range cs {
		cs[i] = network.ServiceCenter{ID: "c", X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}
	idx, _ := nearest.NewIndex(cs)
	p := network.Point{X: 500, Y: 500}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Nearest(p)
	}
}
