// SPDX-License-Identifier: MIT
// Package: fibernet/flow
//
// dinic.go - level graph + blocking flow on the same residual network.

package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fibernet/network"
)

// Dinic computes the same maximum flow as EdmondsKarp using level graphs
// and blocking flows. Options and errors are identical. OnAugment receives
// each path pushed by the blocking-flow DFS.
//
// Steps:
//  1. BFS from source to assign levels over arcs with remaining capacity.
//  2. If the sink has no level, stop.
//  3. Repeatedly DFS from source along arcs that go exactly one level
//     deeper, advancing a per-node arc cursor past dead ends, and push the
//     bottleneck of each path found.
//
// Complexity: O(V² · E) in general, O(E · √V) on unit capacities.
func Dinic(caps network.WeightedGraph, opts ...Option) (Result, error) {
	o, err := resolve(caps.Order(), opts)
	if err != nil {
		return Result{}, err
	}
	r, err := newResidual(caps)
	if err != nil {
		return Result{}, err
	}

	res := Result{Source: o.source, Sink: o.sink, res: r}
	level := make([]int, r.n)
	iter := make([]int, r.n)
	var stack []int // arc indices of the current DFS path
	for r.levels(o.source, o.sink, level) {
		for i := range iter {
			iter[i] = 0
		}
		for {
			f := r.blockingPush(o.source, o.sink, math.MaxInt64, level, iter, &stack)
			if f == 0 {
				break
			}
			if res.Value > math.MaxInt64-f {
				return Result{}, fmt.Errorf("%w after %d augmentations", ErrOverflow, res.Augmentations)
			}
			res.Value += f
			res.Augmentations++
			if o.onAugment != nil {
				path := make([]int, 0, len(stack)+1)
				path = append(path, o.source)
				for _, i := range stack {
					path = append(path, r.arcs[i].to)
				}
				o.onAugment(path, f)
			}
			stack = stack[:0]
		}
	}

	return res, nil
}

// levels runs BFS from s, stores hop distances in level (-1 = unreached) and
// reports whether t got a level.
func (r *residual) levels(s, t int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range r.out[u] {
			a := r.arcs[i]
			if a.rem > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[t] >= 0
}

// blockingPush sends up to limit units from u to t along the level graph and
// records the arcs used in *stack (only on success).
func (r *residual) blockingPush(u, t int, limit int64, level, iter []int, stack *[]int) int64 {
	if u == t {
		return limit
	}
	for ; iter[u] < len(r.out[u]); iter[u]++ {
		i := r.out[u][iter[u]]
		a := r.arcs[i]
		if a.rem <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := limit
		if a.rem < send {
			send = a.rem
		}
		if pushed := r.blockingPush(a.to, t, send, level, iter, stack); pushed > 0 {
			r.push(i, pushed)
			*stack = append([]int{i}, *stack...)

			return pushed
		}
	}

	return 0
}
