// SPDX-License-Identifier: MIT
// Package: fibernet/tsp
//
// nearest_neighbor.go - greedy tour construction with two-hop and
// shortest-path fallbacks and a retracing closure.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/fibernet/dijkstra"
	"github.com/katalvlaran/fibernet/network"
)

// NearestNeighbor builds a closed tour over every node of d. d is expected
// to be connected (network.Validate guarantees it); on a disconnected d the
// fallback step fails as soon as it meets an unreachable node.
//
// Start: the node with the most present links (ties to the lower index),
// unless WithStart is given.
//
// Each step from the current node cur, in this order:
//  1. Direct: the nearest unvisited node linked to cur (ties to lower index).
//  2. TwoHop: the unvisited v minimising d(cur,m)+d(m,v) over visited m
//     (ties to lower v, then lower m).
//  3. Fallback: the lowest-index unvisited node, priced by its shortest path
//     from cur. If it has no path at all, ErrNoHamiltonianClosure.
//
// Closure: a direct link from the last node to the start when present.
// Otherwise the path is retraced backwards until a node linked to the start
// is found, and the closing leg routes through every node passed on the way.
// If retracing reaches the start first, ErrNoHamiltonianClosure.
//
// With WithTwoOpt, a tour whose legs are all Direct is then improved by
// TwoOpt; tours needing any other leg kind are returned as built.
//
// n == 1 yields Tour [s, s] with a single zero-length leg.
//
// Complexity: O(n³) worst case for the two-hop search, O(n²) when every step
// has a direct neighbour.
func NearestNeighbor(d network.Distances, opts ...Option) (Result, error) {
	n := d.Order()
	if n == 0 {
		return Result{}, ErrDimensionMismatch
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	start := o.start
	if !o.startSet {
		start = bestConnected(d)
	}
	if start < 0 || start >= n {
		return Result{}, ErrStartOutOfRange
	}
	if n == 1 {
		return Result{
			Tour: []int{start, start},
			Legs: []Leg{{From: start, To: start, Kind: Direct}},
		}, nil
	}

	visited := make([]bool, n)
	visited[start] = true
	res := Result{Tour: make([]int, 1, n+1), Legs: make([]Leg, 0, n)}
	res.Tour[0] = start

	cur := start
	for len(res.Tour) < n {
		leg, err := nextLeg(d, cur, visited)
		if err != nil {
			return Result{}, err
		}
		visited[leg.To] = true
		res.Tour = append(res.Tour, leg.To)
		res.Legs = append(res.Legs, leg)
		res.Cost += leg.Distance
		cur = leg.To
	}

	closing, err := closeTour(d, res.Tour, res.Legs)
	if err != nil {
		return Result{}, err
	}
	res.Tour = append(res.Tour, start)
	res.Legs = append(res.Legs, closing)
	res.Cost += closing.Distance

	if o.twoOpt && res.Direct() {
		tour, cost, err := TwoOpt(d, res.Tour)
		if err != nil {
			return Result{}, err
		}
		res = Result{Tour: tour, Legs: directLegs(d, tour), Cost: cost}
	}

	return res, nil
}

// bestConnected returns the node with the highest degree, lower index on ties.
func bestConnected(d network.Distances) int {
	best, bestDeg := 0, -1
	for i := 0; i < d.Order(); i++ {
		if deg := d.Degree(i); deg > bestDeg {
			best, bestDeg = i, deg
		}
	}

	return best
}

// nextLeg picks the next node from cur following the direct → two-hop →
// fallback order.
func nextLeg(d network.Distances, cur int, visited []bool) (Leg, error) {
	// 1) direct
	next := -1
	var nextW int64
	d.ForEachNeighbor(cur, func(v int, w int64) {
		if !visited[v] && (next < 0 || w < nextW) {
			next, nextW = v, w
		}
	})
	if next >= 0 {
		return Leg{From: cur, To: next, Distance: nextW, Kind: Direct}, nil
	}

	// 2) one visited intermediate
	via := -1
	d.ForEachNeighbor(cur, func(m int, w1 int64) {
		if !visited[m] {
			return
		}
		d.ForEachNeighbor(m, func(v int, w2 int64) {
			if visited[v] {
				return
			}
			total := w1 + w2
			if next < 0 || total < nextW || (total == nextW && (v < next || (v == next && m < via))) {
				next, via, nextW = v, m, total
			}
		})
	})
	if next >= 0 {
		return Leg{From: cur, To: next, Via: []int{via}, Distance: nextW, Kind: TwoHop}, nil
	}

	// 3) lowest-index unvisited, along its shortest path
	for v := range visited {
		if !visited[v] {
			next = v
			break
		}
	}
	sp, err := dijkstra.Dijkstra(d, dijkstra.Source(cur))
	if err != nil {
		return Leg{}, err
	}
	path := sp.Path(next)
	if path == nil {
		return Leg{}, fmt.Errorf("%w: node %d unreachable from node %d", ErrNoHamiltonianClosure, next, cur)
	}

	return Leg{
		From:     cur,
		To:       next,
		Via:      append([]int(nil), path[1:len(path)-1]...),
		Distance: sp.Dist[next],
		Kind:     Fallback,
	}, nil
}

// closeTour returns the leg from the last node of tour back to tour[0].
// legs[k] joins tour[k] to tour[k+1].
func closeTour(d network.Distances, tour []int, legs []Leg) (Leg, error) {
	start, last := tour[0], tour[len(tour)-1]
	if w, ok := d.At(last, start); ok {
		return Leg{From: last, To: start, Distance: w, Kind: Direct}, nil
	}

	var (
		via  []int
		dist int64
	)
	for k := len(tour) - 1; k >= 1; k-- {
		back := legs[k-1]
		for j := len(back.Via) - 1; j >= 0; j-- {
			via = append(via, back.Via[j])
		}
		dist += back.Distance

		p := tour[k-1]
		if p == start {
			break
		}
		via = append(via, p)
		if w, ok := d.At(p, start); ok {
			return Leg{From: last, To: start, Via: via, Distance: dist + w, Kind: Closing}, nil
		}
	}

	return Leg{}, fmt.Errorf("%w: no node of the path links to node %d", ErrNoHamiltonianClosure, start)
}

// directLegs rebuilds the legs of a tour made only of present links.
func directLegs(d network.Distances, tour []int) []Leg {
	legs := make([]Leg, 0, len(tour)-1)
	for i := 0; i+1 < len(tour); i++ {
		w, _ := d.At(tour[i], tour[i+1])
		legs = append(legs, Leg{From: tour[i], To: tour[i+1], Distance: w, Kind: Direct})
	}

	return legs
}
