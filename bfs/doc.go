// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over integer-indexed graphs,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop count per node, Unreached for nodes never seen
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached nodes
//   - Weight: weight of the arc Parent[v]→v
//
// Graphs
//
//	Any type with Order() and ForEachNeighbor(u, fn) works, which covers
//	network.Distances, network.Capacities and *network.SparseGraph. Weights
//	are carried through but never used for ordering.
//
// Determinism
//
//	Neighbors are enqueued in the order ForEachNeighbor yields them
//	(ascending index for the network types), so the visit sequence is
//	reproducible.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, 0)
//	if err != nil {
//		// ErrGraphNil or ErrStartVertexNotFound
//	}
//	if !res.Reached(5) { ... }
package bfs
