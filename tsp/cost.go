// SPDX-License-Identifier: MIT
// Package: fibernet/tsp
//
// cost.go - pricing a tour over direct links.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/fibernet/network"
)

// TourCost sums d over the consecutive pairs tour[i]→tour[i+1]. Every pair
// must be a present link; a gap yields ErrMissingArc naming the pair.
// Tours with TwoHop, Fallback or Closing legs are priced by Result.Cost instead.
//
// Complexity: O(len(tour)).
func TourCost(d network.Distances, tour []int) (int64, error) {
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	n := d.Order()

	var total int64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, ok := d.At(u, v)
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrMissingArc, u, v)
		}
		total += w
	}

	return total, nil
}
