// SPDX-License-Identifier: MIT
// Package: fibernet/flow
//
// edmonds_karp.go - shortest augmenting paths by BFS.

package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fibernet/network"
)

// EdmondsKarp computes the maximum flow from source to sink over the
// capacity graph caps (typically network.Capacities).
//
// Steps:
//  1. Resolve source (default 0) and sink (default n-1); reject out-of-range
//     or equal endpoints.
//  2. Copy caps into a private residual network of paired arcs; a negative
//     capacity yields EdgeError.
//  3. BFS from source over arcs with remaining capacity, counting arcs only
//     (never weights), recording the parent arc of every reached node.
//  4. Stop when the sink is unreachable. Otherwise take the bottleneck along
//     the parent chain, add it to the total, decrease every forward arc and
//     increase its partner by the same amount.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(caps network.WeightedGraph, opts ...Option) (Result, error) {
	o, err := resolve(caps.Order(), opts)
	if err != nil {
		return Result{}, err
	}
	r, err := newResidual(caps)
	if err != nil {
		return Result{}, err
	}

	res := Result{Source: o.source, Sink: o.sink, res: r}
	parent := make([]int, r.n)
	for {
		if !r.bfs(o.source, o.sink, parent) {
			break
		}

		bottleneck := int64(math.MaxInt64)
		for v := o.sink; v != o.source; v = r.from(parent[v]) {
			if rem := r.arcs[parent[v]].rem; rem < bottleneck {
				bottleneck = rem
			}
		}
		if res.Value > math.MaxInt64-bottleneck {
			return Result{}, fmt.Errorf("%w after %d augmentations", ErrOverflow, res.Augmentations)
		}
		for v := o.sink; v != o.source; v = r.from(parent[v]) {
			r.push(parent[v], bottleneck)
		}
		res.Value += bottleneck
		res.Augmentations++

		if o.onAugment != nil {
			o.onAugment(r.path(o.source, o.sink, parent), bottleneck)
		}
	}

	return res, nil
}

// bfs fills parent[v] with the arc used to reach v and reports whether t
// was reached. Arcs are explored in insertion order.
func (r *residual) bfs(s, t int, parent []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	seen := make([]bool, r.n)
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range r.out[u] {
			a := r.arcs[i]
			if a.rem <= 0 || seen[a.to] {
				continue
			}
			seen[a.to] = true
			parent[a.to] = i
			if a.to == t {
				return true
			}
			queue = append(queue, a.to)
		}
	}

	return false
}

// path rebuilds the node sequence s..t from the parent arcs.
func (r *residual) path(s, t int, parent []int) []int {
	var rev []int
	for v := t; v != s; v = r.from(parent[v]) {
		rev = append(rev, v)
	}
	rev = append(rev, s)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
