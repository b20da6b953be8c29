// SPDX-License-Identifier: MIT
// Package: fibernet/nearest
//
// nearest.go - linear-scan nearest service center.

package nearest

import (
	"errors"

	"github.com/katalvlaran/fibernet/network"
)

// ErrNoCenters is returned when there is nothing to assign to.
var ErrNoCenters = errors.New("nearest: no service centers")

// Assignment is the center chosen for one query point.
type Assignment struct {
	Point    network.Point
	Center   network.ServiceCenter
	Distance float64
}

// Nearest returns the center closest to p. Ties go to the earliest center in
// input order.
//
// Complexity: O(len(centers)).
func Nearest(centers []network.ServiceCenter, p network.Point) (network.ServiceCenter, error) {
	if len(centers) == 0 {
		return network.ServiceCenter{}, ErrNoCenters
	}
	i, _ := scan(centers, p)

	return centers[i], nil
}

// Index answers repeated nearest-center queries over a fixed center list.
// It is safe for concurrent use.
type Index struct {
	centers []network.ServiceCenter
}

// NewIndex copies centers into a new Index.
func NewIndex(centers []network.ServiceCenter) (*Index, error) {
	if len(centers) == 0 {
		return nil, ErrNoCenters
	}
	cp := make([]network.ServiceCenter, len(centers))
	copy(cp, centers)

	return &Index{centers: cp}, nil
}

// Len returns the number of centers.
func (x *Index) Len() int { return len(x.centers) }

// Nearest returns the assignment of p.
func (x *Index) Nearest(p network.Point) Assignment {
	i, dist := scan(x.centers, p)

	return Assignment{Point: p, Center: x.centers[i], Distance: dist}
}

// Assign resolves every point, preserving order.
func (x *Index) Assign(points []network.Point) []Assignment {
	out := make([]Assignment, len(points))
	for k, p := range points {
		out[k] = x.Nearest(p)
	}

	return out
}

// scan returns the index of the closest center and its distance.
func scan(centers []network.ServiceCenter, p network.Point) (int, float64) {
	best, bestDist := 0, centers[0].DistanceTo(p)
	for i := 1; i < len(centers); i++ {
		if dist := centers[i].DistanceTo(p); dist < bestDist {
			best, bestDist = i, dist
		}
	}

	return best, bestDist
}
