// SPDX-License-Identifier: MIT
// Package: fibernet/builder
//
// generate.go - synthetic case construction.
//
// Draw order is fixed (ring, cross links, extra pairs in row-major order,
// capacities in row-major order, center jitter) so that a seed determines
// the case completely.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/fibernet/network"
)

// Generate builds a random connected case with size nodes.
//
// Returns ErrTooFewVertices if size < MinNodes, ErrNeedRandSource without
// WithSeed/WithRand, and ErrConstructFailed (wrapping the validation error)
// if the result does not validate.
//
// Complexity: O(n²) time and memory for the dense matrices.
func Generate(size int, opts ...BuilderOption) (*network.Case, error) {
	if size < MinNodes {
		return nil, builderErrorf(MethodGenerate, "size=%d < %d: %w", size, MinNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodGenerate, "%w", ErrNeedRandSource)
	}

	c := &network.Case{
		NumNodes:   size,
		Distances:  network.NewDistances(size),
		Capacities: network.NewCapacities(size),
	}
	g := &generator{cfg: cfg, c: c}
	g.ring()
	g.crossLinks()
	g.extraLinks()
	g.capacities()
	g.centers()

	if err := network.Validate(c); err != nil {
		return nil, builderErrorf(MethodGenerate, "%w: %w", ErrConstructFailed, err)
	}

	return c, nil
}

type generator struct {
	cfg builderConfig
	c   *network.Case
}

// link adds i–j unless it is a self loop or already present. Skipped pairs
// draw nothing from the RNG.
func (g *generator) link(i, j int) {
	if i == j {
		return
	}
	if _, ok := g.c.Distances.At(i, j); ok {
		return
	}
	g.c.Distances.SetLink(i, j, g.cfg.distanceFn(g.cfg.rng))
}

// ring links every node to its successor, closing at node 0.
func (g *generator) ring() {
	n := g.c.NumNodes
	for i := 0; i < n; i++ {
		g.link(i, (i+1)%n)
	}
}

// crossLinks adds a link to the opposite side of the ring every max(1, n/8)
// nodes, keeping hop counts low on large rings.
func (g *generator) crossLinks() {
	n := g.c.NumNodes
	step := n / 8
	if step < 1 {
		step = 1
	}
	for i := 0; i < n; i += step {
		g.link(i, (i+n/2)%n)
	}
}

// extraLinks adds each remaining pair with probability extraDegree/(n-1).
func (g *generator) extraLinks() {
	n := g.c.NumNodes
	if n < 2 || g.cfg.extraDegree == 0 {
		return
	}
	p := math.Min(1, g.cfg.extraDegree/float64(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, ok := g.c.Distances.At(i, j); ok {
				continue
			}
			if g.cfg.rng.Float64() < p {
				g.link(i, j)
			}
		}
	}
}

// capacities sets both directions of every linked pair independently.
func (g *generator) capacities() {
	n := g.c.NumNodes
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, ok := g.c.Distances.At(i, j); !ok {
				continue
			}
			g.c.Capacities[i][j] = g.cfg.capacityFn(g.cfg.rng)
			g.c.Capacities[j][i] = g.cfg.capacityFn(g.cfg.rng)
		}
	}
}

// centers places CenterCount(n) centers on a jittered grid over the field.
func (g *generator) centers() {
	k := CenterCount(g.c.NumNodes)
	idFn := g.cfg.idFn
	if idFn == nil {
		idFn = autoIDFn(k)
	}

	cols := int(math.Ceil(math.Sqrt(float64(k))))
	rows := (k + cols - 1) / cols
	cellW := FieldSize / float64(cols)
	cellH := FieldSize / float64(rows)

	g.c.Centers = make([]network.ServiceCenter, k)
	for idx := 0; idx < k; idx++ {
		r, col := idx/cols, idx%cols
		x := (float64(col) + 0.5 + jitter(g.cfg.rng)) * cellW
		y := (float64(r) + 0.5 + jitter(g.cfg.rng)) * cellH
		g.c.Centers[idx] = network.ServiceCenter{ID: idFn(idx), X: roundTenth(x), Y: roundTenth(y)}
	}
}

// CenterCount returns how many service centers a case of n nodes receives:
// SmallCaseCenters up to SmallCaseNodes, then n/NodesPerCenter capped at
// MaxCenters.
func CenterCount(n int) int {
	if n <= SmallCaseNodes {
		return SmallCaseCenters
	}
	k := n / NodesPerCenter
	if k > MaxCenters {
		k = MaxCenters
	}

	return k
}

// jitter is uniform in [-JitterFraction, JitterFraction).
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * JitterFraction
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
