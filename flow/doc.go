// SPDX-License-Identifier: MIT

// Package flow computes the maximum sustainable flow between two nodes of a
// capacity graph (network.Capacities, or any network.WeightedGraph whose
// weights are arc capacities).
//
// Algorithms
//
//   - EdmondsKarp
//     Method: breadth-first search for the shortest (fewest-arc) augmenting
//     path, never ordered by capacity.
//     Time:   O(V · E²). Memory: O(V + E).
//
//   - Dinic
//     Method: level graph + blocking flow by DFS with per-node arc cursors.
//     Time:   O(V² · E), O(E · √V) on unit capacities. Memory: O(V + E).
//     Returns the same Value as EdmondsKarp; the augmentation sequence differs.
//
// Residual network
//
// Both solvers copy the capacities into a private residual network in which
// every positive capacity u→v is a forward arc paired with a reverse arc v→u
// of residual 0. Pushing f units lowers the forward residual and raises the
// paired reverse by f. Capacities may be asymmetric; a pair of opposite
// capacities simply yields two independent arc pairs. The input is never
// mutated, so a validated Case can be shared by concurrent runs.
//
// Options
//
//	WithSource(s)      source node, default 0
//	WithSink(t)        sink node, default n-1
//	WithOnAugment(fn)  observe every augmenting path and its bottleneck
//
// Results
//
// Result.Value is the flow; Result.MinCut() reports the source side of a
// minimum cut and the saturated arcs crossing it, whose capacities sum to Value.
//
// Errors
//
//	ErrSourceNotFound - source outside [0, n).
//	ErrSinkNotFound   - sink outside [0, n).
//	ErrSameEndpoints  - source == sink.
//	EdgeError         - a negative capacity.
//
// Running out of augmenting paths is normal termination, not an error.
package flow
