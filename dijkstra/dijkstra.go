// SPDX-License-Identifier: MIT
// Package: fibernet/dijkstra
//
// dijkstra.go - single-source shortest paths with a lazy min-heap.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/fibernet/network"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Preconditions and validation (in order):
//  1. Source must be in [0, n) (ErrVertexNotFound).
//  2. No link of g may have a negative weight (ErrNegativeWeight).
//
// Ties on distance are settled by the lower node index, and a node's
// predecessor only changes on a strictly shorter path, so Prev is
// deterministic for a given g.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries)
func Dijkstra(g network.WeightedGraph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return Result{}, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// Fail fast on negative weights before any relaxation.
	var negErr error
	for u := 0; u < n && negErr == nil; u++ {
		g.ForEachNeighbor(u, func(v int, w int64) {
			if w < 0 && negErr == nil {
				negErr = fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		})
	}
	if negErr != nil {
		return Result{}, negErr
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       network.WeightedGraph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets dist = Unreachable, prev = -1 everywhere and seeds the heap with Source.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled node until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves neighbours of the settled node u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	r.g.ForEachNeighbor(u, func(v int, w int64) {
		if r.visited[v] {
			return
		}
		nd := du + w
		if nd >= r.dist[v] {
			return
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	})
}

// nodeItem is a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
