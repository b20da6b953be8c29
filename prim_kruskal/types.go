// SPDX-License-Identifier: MIT
// Package: fibernet/prim_kruskal
//
// types.go - tree representation, method names and sentinel errors.

package prim_kruskal

import "errors"

// ErrEmptyGraph indicates a graph with no nodes; no spanning tree exists.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no nodes")

// ErrDisconnected indicates that some node cannot be joined to node 0.
// Builders never return a partial tree alongside it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Build for a method name other than
// MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects the greedy frontier expansion from node 0.
const MethodPrim = "prim"

// MethodKruskal selects the global sort + union-find construction.
const MethodKruskal = "kruskal"

// Edge is one tree connection: Parent joins Child at cost Weight.
type Edge struct {
	Parent int
	Child  int
	Weight int64
}

// Tree lists the n-1 edges of a spanning tree, ordered by Child (1..n-1).
type Tree []Edge

// Cost returns the sum of edge weights.
// Complexity: O(n).
func (t Tree) Cost() int64 {
	var total int64
	for _, e := range t {
		total += e.Weight
	}

	return total
}
