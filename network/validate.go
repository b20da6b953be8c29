// SPDX-License-Identifier: MIT
// Package: fibernet/network
//
// validate.go - invariant checks for Case and bare distance matrices.
//
// Order of checks (first failure wins):
//  1. dimensions, 2. zero diagonal, 3. negative weights, 4. NoEdge range,
//  5. symmetry, 6. connectivity from node 0, 7. non-empty centers.
//
// Complexity: O(n²) time, O(n) extra space for the traversal.

package network

import "github.com/katalvlaran/fibernet/bfs"

// Validate reports the first invariant violated by c, or nil.
func Validate(c *Case) error {
	if c == nil || c.NumNodes <= 0 {
		return violation(ErrBadDimensions, -1, -1)
	}
	n := c.NumNodes
	if err := checkShape(len(c.Distances), n, func(i int) int { return len(c.Distances[i]) }); err != nil {
		return err
	}
	if err := checkShape(len(c.Capacities), n, func(i int) int { return len(c.Capacities[i]) }); err != nil {
		return err
	}
	if err := checkDistanceCells(c.Distances); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c.Capacities[i][j] < 0 {
				return violation(ErrNegativeWeight, i, j)
			}
		}
	}
	if reached, ok := Connected(c.Distances); !ok {
		return violation(ErrDisconnected, firstUnreached(c.Distances, reached), -1)
	}
	if len(c.Centers) == 0 {
		return violation(ErrNoCenters, -1, -1)
	}

	return nil
}

// ValidateDistances runs the matrix-local checks (dimensions, diagonal,
// sign, range, symmetry) on a bare distance matrix. Connectivity is not
// required here; solvers that need it report their own error.
func ValidateDistances(d Distances) error {
	if len(d) == 0 {
		return violation(ErrBadDimensions, -1, -1)
	}
	if err := checkShape(len(d), len(d), func(i int) int { return len(d[i]) }); err != nil {
		return err
	}

	return checkDistanceCells(d)
}

// checkShape verifies rows == n and every row length == n.
func checkShape(rows, n int, rowLen func(int) int) error {
	if rows != n {
		return violation(ErrBadDimensions, rows, -1)
	}
	for i := 0; i < rows; i++ {
		if rowLen(i) != n {
			return violation(ErrBadDimensions, i, rowLen(i))
		}
	}

	return nil
}

// checkDistanceCells assumes a square matrix.
func checkDistanceCells(d Distances) error {
	n := len(d)
	for i := 0; i < n; i++ {
		if dg := d[i][i]; !dg.Present || dg.Weight != 0 {
			return violation(ErrNonZeroDiagonal, i, i)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			l := d[i][j]
			if !l.Present {
				continue
			}
			if l.Weight < 0 {
				return violation(ErrNegativeWeight, i, j)
			}
			if l.Weight >= NoEdge {
				return violation(ErrWeightOutOfRange, i, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d[i][j] != d[j][i] {
				return violation(ErrAsymmetric, i, j)
			}
		}
	}

	return nil
}

// Connected runs a breadth-first walk from node 0 and returns the visited
// set together with whether every node was reached.
// An empty graph is reported as not connected.
func Connected(g WeightedGraph) ([]bool, bool) {
	n := g.Order()
	if n == 0 {
		return nil, false
	}
	res, err := bfs.Walk(g, 0)
	if err != nil {
		return nil, false
	}
	seen := make([]bool, n)
	for v := range seen {
		seen[v] = res.Reached(v)
	}

	return seen, len(res.Order) == n
}

func firstUnreached(g WeightedGraph, seen []bool) int {
	for i := 0; i < g.Order(); i++ {
		if !seen[i] {
			return i
		}
	}

	return -1
}
