// SPDX-License-Identifier: MIT
// Package: fibernet/flow
//
// types.go - errors, options and result of the max-flow solvers.

package flow

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the source index is outside [0, n).
var ErrSourceNotFound = errors.New("flow: source node not found")

// ErrSinkNotFound is returned when the sink index is outside [0, n).
var ErrSinkNotFound = errors.New("flow: sink node not found")

// ErrSameEndpoints is returned when source and sink are the same node.
var ErrSameEndpoints = errors.New("flow: source and sink are the same node")

// ErrOverflow is returned when the total flow would not fit in an int64.
var ErrOverflow = errors.New("flow: total exceeds int64")

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d→%d: %d", e.From, e.To, e.Cap)
}

// AugmentFunc observes one augmenting path (source first, sink last) and the
// flow pushed along it.
type AugmentFunc func(path []int, bottleneck int64)

// Option configures a solver run.
type Option func(*options)

type options struct {
	source    int
	sink      int
	sinkSet   bool
	onAugment AugmentFunc
}

// WithSource selects the source node (default 0).
func WithSource(s int) Option {
	return func(o *options) { o.source = s }
}

// WithSink selects the sink node (default n-1).
func WithSink(t int) Option {
	return func(o *options) {
		o.sink = t
		o.sinkSet = true
	}
}

// WithOnAugment registers fn to be called after every augmentation.
// Panics if fn is nil.
func WithOnAugment(fn AugmentFunc) Option {
	if fn == nil {
		panic("flow: WithOnAugment(nil)")
	}

	return func(o *options) { o.onAugment = fn }
}

// Result is the outcome of a max-flow run.
type Result struct {
	Value         int64 // total flow from Source to Sink
	Source, Sink  int
	Augmentations int // number of augmenting paths (Edmonds–Karp) or pushes (Dinic)

	res *residual
}

// CutArc is an arc crossing a minimum cut, with its original capacity.
type CutArc struct {
	From, To int
	Capacity int64
}

// Cut is an s-t minimum cut: SourceSide lists, in ascending order, the nodes
// still reachable from the source in the final residual network; Arcs are the
// original arcs leaving that set.
type Cut struct {
	SourceSide []int
	Arcs       []CutArc
}

// Capacity returns the sum of the cut arc capacities.
func (c Cut) Capacity() int64 {
	var total int64
	for _, a := range c.Arcs {
		total += a.Capacity
	}

	return total
}
