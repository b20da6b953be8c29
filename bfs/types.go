// SPDX-License-Identifier: MIT

// Package bfs provides error definitions and the result type
// for breadth-first search.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Unreached is the Depth of nodes the walk never saw.
const Unreached = -1

// Graph is the read-only view BFS needs. ForEachNeighbor must call fn once
// per arc u→v.
type Graph interface {
	Order() int
	ForEachNeighbor(u int, fn func(v int, w int64))
}

// Result holds the outcome of a BFS traversal. Slices are indexed by node.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
	Weight []int64
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}
