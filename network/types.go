// SPDX-License-Identifier: MIT
// Package: fibernet/network
//
// types.go - Case, Link and the dense matrix views.
//
// Design:
//   - Link makes "no direct connection" a value, not a magic number.
//   - Distances and Capacities are plain slices with small read-only helpers;
//     solvers never mutate them.
//   - Both satisfy WeightedGraph so traversals do not care about the layout.

package network

import "math"

// NoEdge is the integer written to case files for an absent distance cell.
// It is far below the int64 range so that readers summing raw file values by
// mistake still do not overflow.
const NoEdge int64 = 1_000_000_000

// Link is one cell of a distance matrix.
type Link struct {
	Weight  int64
	Present bool
}

// NoLink is the absent link (zero value).
var NoLink = Link{}

// Edge returns a present link with weight w.
func Edge(w int64) Link { return Link{Weight: w, Present: true} }

// WeightedGraph is the minimal read-only view shared by traversal-based solvers.
// ForEachNeighbor must visit neighbours of u in ascending index order and never
// report u itself.
type WeightedGraph interface {
	// Order returns the number of nodes.
	Order() int
	// ForEachNeighbor calls fn for every arc u→v with its weight.
	ForEachNeighbor(u int, fn func(v int, w int64))
}

// Distances is a dense n×n distance matrix.
type Distances [][]Link

var _ WeightedGraph = Distances(nil)

// NewDistances returns an n×n matrix with zero diagonal and no other links.
func NewDistances(n int) Distances {
	d := make(Distances, n)
	for i := range d {
		d[i] = make([]Link, n)
		d[i][i] = Edge(0)
	}

	return d
}

// Order returns the number of rows.
func (d Distances) Order() int { return len(d) }

// At returns the weight of the i–j link and whether it is present.
// Out-of-range indices report an absent link.
func (d Distances) At(i, j int) (int64, bool) {
	if i < 0 || i >= len(d) || j < 0 || j >= len(d[i]) {
		return 0, false
	}
	l := d[i][j]

	return l.Weight, l.Present
}

// SetLink sets the undirected link i–j to weight w.
func (d Distances) SetLink(i, j int, w int64) {
	d[i][j] = Edge(w)
	d[j][i] = Edge(w)
}

// Degree counts present off-diagonal links of node i.
func (d Distances) Degree(i int) int {
	deg := 0
	for j, l := range d[i] {
		if j != i && l.Present {
			deg++
		}
	}

	return deg
}

// ForEachNeighbor visits present off-diagonal links of u in column order.
func (d Distances) ForEachNeighbor(u int, fn func(v int, w int64)) {
	for v, l := range d[u] {
		if v == u || !l.Present {
			continue
		}
		fn(v, l.Weight)
	}
}

// Clone returns a deep copy.
func (d Distances) Clone() Distances {
	out := make(Distances, len(d))
	for i := range d {
		out[i] = append([]Link(nil), d[i]...)
	}

	return out
}

// Capacities is a dense n×n capacity matrix; 0 means no arc.
type Capacities [][]int64

var _ WeightedGraph = Capacities(nil)

// NewCapacities returns an all-zero n×n matrix.
func NewCapacities(n int) Capacities {
	c := make(Capacities, n)
	for i := range c {
		c[i] = make([]int64, n)
	}

	return c
}

// Order returns the number of rows.
func (c Capacities) Order() int { return len(c) }

// ForEachNeighbor visits every non-zero arc u→v, negative ones included, so
// that consumers can reject them.
func (c Capacities) ForEachNeighbor(u int, fn func(v int, w int64)) {
	for v, w := range c[u] {
		if v == u || w == 0 {
			continue
		}
		fn(v, w)
	}
}

// Clone returns a deep copy.
func (c Capacities) Clone() Capacities {
	out := make(Capacities, len(c))
	for i := range c {
		out[i] = append([]int64(nil), c[i]...)
	}

	return out
}

// ServiceCenter is a labelled location able to serve clients. Immutable once built.
type ServiceCenter struct {
	ID   string
	X, Y float64
}

// Point is a bare query coordinate.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between the center and p.
func (s ServiceCenter) DistanceTo(p Point) float64 {
	return math.Hypot(s.X-p.X, s.Y-p.Y)
}

// Case is a complete network-design instance.
type Case struct {
	NumNodes   int
	Distances  Distances
	Capacities Capacities
	Centers    []ServiceCenter
}
