// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/prim_kruskal"
)

// BenchmarkPrimDense measures Prim on a 500-node dense matrix.
func BenchmarkPrimDense(b *testing.B) {
	d := randomConnected(rand.New(rand.NewSource(1)), 500, 0.02, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(d)
	}
}

// BenchmarkPrimSparse runs the same graph through the adjacency-list view.
func BenchmarkPrimSparse(b *testing.B) {
	g := network.ToSparse(randomConnected(rand.New(rand.NewSource(1)), 500, 0.02, 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}

// BenchmarkKruskal measures the sort-and-union pass on the same input.
func BenchmarkKruskal(b *testing.B) {
	g := network.ToSparse(randomConnected(rand.New(rand.NewSource(1)), 500, 0.02, 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}
