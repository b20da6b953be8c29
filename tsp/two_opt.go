// SPDX-License-Identifier: MIT
// Package: fibernet/tsp
//
// two_opt.go - first-improvement 2-opt restricted to present links.

package tsp

import "github.com/katalvlaran/fibernet/network"

// TwoOpt runs deterministic first-improvement 2-opt on a closed tour whose
// every arc is a present link. A move reversing tour[i..k] is accepted only
// when both new arcs (a,c) and (b,d) exist and
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d) < 0,
//
// with a=T[i−1], b=T[i], c=T[k], d=T[k+1]. The scan restarts after every
// accepted move and stops at a local optimum. The start node stays in place
// and the input slice is not modified.
//
// Returns the improved tour and its cost. Errors: ErrDimensionMismatch for a
// malformed tour, ErrMissingArc if the input tour already uses a gap.
//
// Complexity: O(iter · n²) time, O(n) space.
func TwoOpt(d network.Distances, tour []int) ([]int, int64, error) {
	n := d.Order()
	if err := ValidateTour(tour, n); err != nil {
		return nil, 0, err
	}
	cost, err := TourCost(d, tour)
	if err != nil {
		return nil, 0, err
	}

	cur := make([]int, n+1)
	copy(cur, tour)
	if n < 4 {
		// every 2-opt move on a triangle or smaller gives the same cycle
		return cur, cost, nil
	}

	for improved := true; improved; {
		improved = false
	scan:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, e := cur[i-1], cur[i], cur[k], cur[k+1]
				wac, ok1 := d.At(a, c)
				wbe, ok2 := d.At(b, e)
				if !ok1 || !ok2 {
					continue // candidate would introduce a missing link
				}
				wab, _ := d.At(a, b)
				wce, _ := d.At(c, e)
				if delta := (wac + wbe) - (wab + wce); delta < 0 {
					reverseArcInPlace(cur, i, k)
					cost += delta
					improved = true

					break scan
				}
			}
		}
	}

	return cur, cost, nil
}
