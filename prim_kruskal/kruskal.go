// SPDX-License-Identifier: MIT
// Package: fibernet/prim_kruskal
//
// kruskal.go - global edge sort + union-find, oriented from node 0.

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fibernet/bfs"
	"github.com/katalvlaran/fibernet/network"
)

// Kruskal computes a minimum spanning tree of g using a disjoint-set forest
// with path compression and union by rank. The undirected result is then
// rooted at node 0 so that it has the same (Parent, Child) shape as Prim.
//
// Steps:
//  1. Collect each undirected link once (u < v).
//  2. Stable-sort by weight; equal weights keep (u, v) order.
//  3. Accept an edge iff its endpoints are in different sets; stop at n-1 edges.
//  4. Fewer than n-1 accepted edges → ErrDisconnected.
//  5. Orient with bfs.Walk from node 0 and list edges by child index.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g network.WeightedGraph) (Tree, error) {
	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if n == 1 {
		return Tree{}, nil
	}

	type link struct {
		u, v int
		w    int64
	}
	var links []link
	for u := 0; u < n; u++ {
		g.ForEachNeighbor(u, func(v int, w int64) {
			if u < v {
				links = append(links, link{u: u, v: v, w: w})
			}
		})
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].w < links[j].w })

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}

		return true
	}

	forest := network.NewSparseGraph(n)
	accepted := 0
	for _, l := range links {
		if !union(l.u, l.v) {
			continue
		}
		forest.Adj[l.u] = append(forest.Adj[l.u], network.Neighbor{To: l.v, Weight: l.w})
		forest.Adj[l.v] = append(forest.Adj[l.v], network.Neighbor{To: l.u, Weight: l.w})
		if accepted++; accepted == n-1 {
			break
		}
	}
	if accepted < n-1 {
		for i := 1; i < n; i++ {
			if find(i) != find(0) {
				return nil, fmt.Errorf("%w: node %d unreachable from node 0", ErrDisconnected, i)
			}
		}

		return nil, ErrDisconnected
	}
	for _, nbrs := range forest.Adj {
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].To < nbrs[j].To })
	}

	// Root the tree at node 0.
	walk, err := bfs.Walk(forest, 0)
	if err != nil {
		return nil, err
	}
	tree := make(Tree, n-1)
	for v := 1; v < n; v++ {
		tree[v-1] = Edge{Parent: walk.Parent[v], Child: v, Weight: walk.Weight[v]}
	}

	return tree, nil
}

// Build dispatches to Prim or Kruskal by method name.
func Build(g network.WeightedGraph, method string) (Tree, error) {
	switch method {
	case MethodPrim, "":
		return Prim(g)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}
