// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a
// network.WeightedGraph with non-negative link weights.
//
// Overview:
//
//   - Dijkstra settles nodes in order of increasing distance using a lazy
//     min-heap keyed by (distance, node index).
//   - Result carries Dist and Prev slices indexed by node; Result.Path(t)
//     rebuilds the route Source..t.
//
// Within fibernet it prices tour legs that have no direct link: when the
// tour heuristic falls back to an arbitrary unvisited node, the leg length is
// the shortest-path distance and the leg records the intermediate nodes.
//
// Absent links are simply not reported by ForEachNeighbor, so no sentinel
// weight ever enters a sum.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//	ErrVertexNotFound - source outside [0, n).
//	ErrNegativeWeight - a negative link weight.
package dijkstra
