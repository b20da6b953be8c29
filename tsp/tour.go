// SPDX-License-Identifier: MIT
// Package: fibernet/tsp
//
// tour.go - structural checks and in-place edits on closed tours.

package tsp

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n],
//	each node v in [0, n) appears exactly once in tour[0:n].
//
// For n == 1 the only valid tour is [0, 0].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k], keeping both
// ends of the closed tour fixed. This is the 2-opt move.
//
// Contracts: 1 ≤ i < k ≤ n-1 where n = len(tour)-1.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
