// SPDX-License-Identifier: MIT

// Package prim_kruskal builds minimum-cost spanning connection trees over a
// network.WeightedGraph (dense network.Distances or a *network.SparseGraph).
//
// What & Why
//
//	A spanning tree connects every service area with n-1 links; the minimum
//	one is the cheapest fibre layout that still reaches every node.
//
// Algorithms
//
//   - Prim(g) (Tree, error)
//     Greedy frontier expansion from node 0. Each round extracts the unvisited
//     node with the cheapest known connection (ties to the lower index) and
//     relaxes its links. Time O((V+E) log V) with a lazy min-heap.
//
//   - Kruskal(g) (Tree, error)
//     Sort every link by weight, accept those joining two components
//     (union-find with path compression and union by rank), then root the
//     result at node 0. Time O(E log E). Kept as an independent cross-check
//     and for callers who prefer a global pass.
//
//   - Build(g, method) dispatches on MethodPrim / MethodKruskal.
//
// Both return a Tree: edges (Parent, Child, Weight) listed by Child = 1..n-1.
// Tree.Cost() derives the total weight; it is never stored.
//
// Errors
//
//	ErrEmptyGraph   - g has no nodes.
//	ErrDisconnected - some node cannot be joined to node 0. The wrapped
//	                  message names the lowest such node. No partial tree is
//	                  ever returned.
//	ErrUnknownMethod - Build received an unsupported method name.
//
// Neither builder mutates g.
package prim_kruskal
