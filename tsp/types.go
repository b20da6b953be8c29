// SPDX-License-Identifier: MIT
// Package: fibernet/tsp
//
// types.go - sentinel errors, options and the tour result.

package tsp

import "errors"

var (
	// ErrDimensionMismatch indicates a tour or matrix of the wrong shape, or a
	// sequence that is not a closed permutation.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start node outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNoHamiltonianClosure indicates that the heuristic could not complete
	// a closed tour: either an unvisited node has no path at all from the
	// current position, or no node of the built path links back to the start.
	ErrNoHamiltonianClosure = errors.New("tsp: no closing edge back to the start")

	// ErrMissingArc indicates that a tour uses a pair of nodes with no link.
	ErrMissingArc = errors.New("tsp: tour uses a missing link")
)

// LegKind tells how a leg of the tour was produced.
type LegKind int

const (
	// Direct: a link between consecutive tour nodes.
	Direct LegKind = iota
	// TwoHop: routed through one already-visited intermediate node.
	TwoHop
	// Fallback: lowest-index unvisited node reached by its shortest path.
	Fallback
	// Closing: the way back to the start retraced along the built path.
	Closing
)

func (k LegKind) String() string {
	switch k {
	case Direct:
		return "direct"
	case TwoHop:
		return "two-hop"
	case Fallback:
		return "fallback"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// MarshalText lets reports print the kind by name.
func (k LegKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Leg is one step of the tour from From to To. Via lists the nodes passed
// through on the way (empty for Direct legs); Distance is the travelled length.
type Leg struct {
	From     int
	To       int
	Via      []int
	Distance int64
	Kind     LegKind
}

// Result is a closed visiting order.
//
// Tour has length n+1 with Tour[0] == Tour[n] == start, and every node appears
// exactly once in Tour[0:n]. Legs[i] goes from Tour[i] to Tour[i+1]. Cost is
// the sum of leg distances.
type Result struct {
	Tour []int
	Legs []Leg
	Cost int64
}

// Direct reports whether every leg is a direct link.
func (r Result) Direct() bool {
	for _, l := range r.Legs {
		if l.Kind != Direct {
			return false
		}
	}

	return true
}

// Option configures NearestNeighbor.
type Option func(*options)

type options struct {
	start    int
	startSet bool
	twoOpt   bool
}

// WithStart fixes the start node instead of picking the best-connected one.
func WithStart(v int) Option {
	return func(o *options) {
		o.start = v
		o.startSet = true
	}
}

// WithTwoOpt polishes a fully direct tour with first-improvement 2-opt.
func WithTwoOpt() Option {
	return func(o *options) { o.twoOpt = true }
}
