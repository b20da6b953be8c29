// SPDX-License-Identifier: MIT
// Package: fibernet/prim_kruskal
//
// prim.go - greedy frontier expansion (Prim) rooted at node 0.

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/fibernet/network"
)

// Prim computes a minimum spanning tree of g grown from node 0.
//
// Steps:
//  1. best[v] = unreached, pred[v] = -1 for every v; best[0] = 0.
//  2. Pop the unvisited node with the smallest (best, index) pair from a lazy
//     min-heap and mark it visited. Stale heap entries are skipped.
//  3. For each unvisited neighbour v with w < best[v]: best[v] = w, pred[v] = u,
//     push (w, v).
//  4. Emit (pred[i], i) for i = 1..n-1. A node left without a predecessor
//     means g is disconnected and ErrDisconnected is returned instead.
//
// Ties on cost are broken by the lower node index, which makes the output
// deterministic for both dense and sparse views of the same graph.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Prim(g network.WeightedGraph) (Tree, error) {
	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	var (
		best    = make([]int64, n)
		pred    = make([]int, n)
		reached = make([]bool, n)
		visited = make([]bool, n)
		pq      = make(frontier, 0, n)
	)
	for i := range pred {
		pred[i] = -1
	}
	reached[0] = true
	heap.Push(&pq, frontierItem{node: 0, cost: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(frontierItem)
		u := it.node
		if visited[u] || it.cost != best[u] {
			continue // stale entry
		}
		visited[u] = true

		g.ForEachNeighbor(u, func(v int, w int64) {
			if visited[v] {
				return
			}
			if !reached[v] || w < best[v] {
				reached[v] = true
				best[v] = w
				pred[v] = u
				heap.Push(&pq, frontierItem{node: v, cost: w})
			}
		})
	}

	tree := make(Tree, 0, n-1)
	for i := 1; i < n; i++ {
		if pred[i] < 0 {
			return nil, fmt.Errorf("%w: node %d unreachable from node 0", ErrDisconnected, i)
		}
		tree = append(tree, Edge{Parent: pred[i], Child: i, Weight: best[i]})
	}

	return tree, nil
}

// frontierItem is a candidate node with the cost of its best known connection.
type frontierItem struct {
	node int
	cost int64
}

// frontier implements heap.Interface ordered by (cost, node).
type frontier []frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].node < pq[j].node
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
