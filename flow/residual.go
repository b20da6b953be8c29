// SPDX-License-Identifier: MIT
// Package: fibernet/flow
//
// residual.go - paired-arc residual network shared by both solvers.

package flow

import "github.com/katalvlaran/fibernet/network"

// arc is one direction of a residual pair. Arcs are stored in pairs so the
// partner of arc i is always i^1: even indices are forward arcs carrying the
// original capacity, odd indices are their reverse arcs starting at 0.
type arc struct {
	to   int
	rem  int64 // residual capacity
	orig int64 // original capacity; 0 on reverse arcs
}

// residual owns a private copy of the capacities. The input graph is never
// touched after construction.
type residual struct {
	n    int
	arcs []arc
	out  [][]int // out[u] = indices of arcs leaving u, in insertion order
}

// newResidual builds the residual network from caps. Every positive
// capacity u→v becomes a forward arc; negative capacities are rejected.
func newResidual(caps network.WeightedGraph) (*residual, error) {
	n := caps.Order()
	r := &residual{n: n, out: make([][]int, n)}

	var bad *EdgeError
	for u := 0; u < n && bad == nil; u++ {
		caps.ForEachNeighbor(u, func(v int, c int64) {
			switch {
			case bad != nil, u == v, c == 0:
			case c < 0:
				bad = &EdgeError{From: u, To: v, Cap: c}
			default:
				r.addPair(u, v, c)
			}
		})
	}
	if bad != nil {
		return nil, *bad
	}

	return r, nil
}

func (r *residual) addPair(u, v int, c int64) {
	r.out[u] = append(r.out[u], len(r.arcs))
	r.arcs = append(r.arcs, arc{to: v, rem: c, orig: c})
	r.out[v] = append(r.out[v], len(r.arcs))
	r.arcs = append(r.arcs, arc{to: u})
}

// push moves f units along arc i and returns them on its partner.
func (r *residual) push(i int, f int64) {
	r.arcs[i].rem -= f
	r.arcs[i^1].rem += f
}

// from returns the tail of arc i (the head of its partner).
func (r *residual) from(i int) int { return r.arcs[i^1].to }

// reachable marks the nodes reachable from s over arcs with remaining capacity.
func (r *residual) reachable(s int) []bool {
	seen := make([]bool, r.n)
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range r.out[u] {
			a := r.arcs[i]
			if a.rem > 0 && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return seen
}

// MinCut derives a minimum s-t cut from the final residual network. Its
// capacity equals Value. A zero Result yields an empty cut.
//
// Complexity: O(V + E).
func (res Result) MinCut() Cut {
	if res.res == nil {
		return Cut{}
	}
	r := res.res
	seen := r.reachable(res.Source)

	var cut Cut
	for u := 0; u < r.n; u++ {
		if !seen[u] {
			continue
		}
		cut.SourceSide = append(cut.SourceSide, u)
		for _, i := range r.out[u] {
			a := r.arcs[i]
			if a.orig > 0 && !seen[a.to] {
				cut.Arcs = append(cut.Arcs, CutArc{From: u, To: a.to, Capacity: a.orig})
			}
		}
	}

	return cut
}

// resolve applies opts and checks the endpoints against n.
func resolve(n int, opts []Option) (options, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.sinkSet {
		o.sink = n - 1
	}
	if o.source < 0 || o.source >= n {
		return o, ErrSourceNotFound
	}
	if o.sink < 0 || o.sink >= n {
		return o, ErrSinkNotFound
	}
	if o.source == o.sink {
		return o, ErrSameEndpoints
	}

	return o, nil
}
