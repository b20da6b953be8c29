// SPDX-License-Identifier: MIT
// Package: fibernet/dijkstra
//
// types.go - errors, options and result of the shortest-path search.

package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for nodes the search never reached.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrVertexNotFound indicates a source index outside [0, n).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative link weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source - starting node index.
type Options struct {
	Source int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node (default 0).
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// DefaultOptions returns Options for source 0.
func DefaultOptions() Options {
	return Options{Source: 0}
}

// Result holds shortest distances and predecessors from Source.
// Dist[v] == Unreachable and Prev[v] == -1 for unreached v; Prev[Source] == -1.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Path returns the node sequence Source..target, or nil if target was not
// reached (or is out of range).
func (r Result) Path(target int) []int {
	if target < 0 || target >= len(r.Dist) || r.Dist[target] == Unreachable {
		return nil
	}
	var rev []int
	for v := target; v != -1; v = r.Prev[v] {
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
