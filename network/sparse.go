// SPDX-License-Identifier: MIT
// Package: fibernet/network
//
// sparse.go - adjacency-list view of a distance matrix.
//
// ToSparse drops the implied zero diagonal and every absent cell;
// FromSparse restores them. For any matrix accepted by ValidateDistances
// the round trip is lossless.

package network

import "fmt"

// Neighbor is one adjacency-list entry.
type Neighbor struct {
	To     int
	Weight int64
}

// SparseGraph stores, for each node, its links sorted by neighbour index.
type SparseGraph struct {
	Adj [][]Neighbor
}

var _ WeightedGraph = (*SparseGraph)(nil)

// NewSparseGraph returns a graph with n isolated nodes.
func NewSparseGraph(n int) *SparseGraph {
	return &SparseGraph{Adj: make([][]Neighbor, n)}
}

// Order returns the number of nodes.
func (g *SparseGraph) Order() int { return len(g.Adj) }

// ForEachNeighbor visits the adjacency list of u in stored order.
func (g *SparseGraph) ForEachNeighbor(u int, fn func(v int, w int64)) {
	for _, nb := range g.Adj[u] {
		fn(nb.To, nb.Weight)
	}
}

// Edges counts stored directed entries (twice the undirected link count for
// a symmetric source).
func (g *SparseGraph) Edges() int {
	m := 0
	for _, row := range g.Adj {
		m += len(row)
	}

	return m
}

// ToSparse converts a dense matrix into adjacency lists in column order.
func ToSparse(d Distances) *SparseGraph {
	g := NewSparseGraph(len(d))
	for u := range d {
		d.ForEachNeighbor(u, func(v int, w int64) {
			g.Adj[u] = append(g.Adj[u], Neighbor{To: v, Weight: w})
		})
	}

	return g
}

// FromSparse expands g into a dense matrix with a zero diagonal.
// Entries pointing outside [0,n) or at the node itself are rejected.
func FromSparse(g *SparseGraph) (Distances, error) {
	n := g.Order()
	d := NewDistances(n)
	for u, row := range g.Adj {
		for _, nb := range row {
			if nb.To < 0 || nb.To >= n || nb.To == u {
				return nil, fmt.Errorf("network: sparse entry %d→%d: %w", u, nb.To, ErrBadDimensions)
			}
			d[u][nb.To] = Edge(nb.Weight)
		}
	}

	return d, nil
}
