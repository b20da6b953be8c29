// SPDX-License-Identifier: MIT

// Package network holds the validated data model shared by every fibernet solver.
//
// A Case describes a set of service areas (nodes) numbered 0..n-1:
//
//	Distances  - symmetric n×n matrix of Link cells; a Link is either present
//	             with a non-negative weight or absent (no direct connection).
//	Capacities - n×n matrix of non-negative integers; 0 means "no arc".
//	             It need not be symmetric.
//	Centers    - ordered list of service centers placed in the plane.
//
// Absent edges are explicit in memory (Link.Present == false). The large
// integer NoEdge only exists in the plain-text case file, so path sums never
// run into sentinel arithmetic.
//
// Validate enumerates every invariant and reports the first violation as a
// *ValidationError wrapping one of the sentinel errors of this package:
//
//	ErrBadDimensions    - matrices are not NumNodes×NumNodes
//	ErrNonZeroDiagonal  - Distances[i][i] is not a present zero link
//	ErrNegativeWeight   - negative distance or capacity
//	ErrWeightOutOfRange - distance collides with the NoEdge file sentinel
//	ErrAsymmetric       - Distances[i][j] != Distances[j][i]
//	ErrDisconnected     - some node is unreachable from node 0
//	ErrNoCenters        - the center list is empty
//
// SparseGraph is an adjacency-list view that keeps memory proportional to the
// number of links. Distances, Capacities and *SparseGraph all satisfy
// WeightedGraph, so traversal-based solvers accept either representation.
//
// The text format read by Decode and written by Encode is:
//
//	numNodes
//	<numNodes rows of numNodes integers>   distances
//	<numNodes rows of numNodes integers>   capacities
//	numCenters
//	<numCenters lines: id x y>
//
// Everything in this package is a pure function of its input.
package network
