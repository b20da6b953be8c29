// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/fibernet/bfs"
	"github.com/katalvlaran/fibernet/network"
)

// BenchmarkWalk_Ring walks a 10k-node ring through the sparse view.
func BenchmarkWalk_Ring(b *testing.B) {
	const n = 10000
	g := network.NewSparseGraph(n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		g.Adj[i] = append(g.Adj[i], network.Neighbor{To: j, Weight: 1})
		g.Adj[j] = append(g.Adj[j], network.Neighbor{To: i, Weight: 1})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Walk(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
