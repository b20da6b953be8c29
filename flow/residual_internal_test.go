// SPDX-License-Identifier: MIT

package flow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibernet/network"
)

// requireFeasible checks capacity bounds and conservation on the final residual.
func requireFeasible(t *testing.T, res Result) {
	t.Helper()
	r := res.res
	net := make([]int64, r.n)
	for i := 0; i < len(r.arcs); i += 2 {
		fwd := r.arcs[i]
		f := fwd.orig - fwd.rem
		require.GreaterOrEqual(t, f, int64(0), "arc %d below zero", i)
		require.LessOrEqual(t, f, fwd.orig, "arc %d over capacity", i)
		require.Equal(t, f, r.arcs[i^1].rem, "pair %d out of sync", i)
		net[r.from(i)] -= f
		net[fwd.to] += f
	}
	for v, x := range net {
		switch v {
		case res.Source:
			require.Equal(t, -res.Value, x)
		case res.Sink:
			require.Equal(t, res.Value, x)
		default:
			require.Zero(t, x, "conservation at node %d", v)
		}
	}
}

func TestResidualFeasibility(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 30; trial++ {
		n := 3 + rng.Intn(10)
		caps := network.NewCapacities(n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v && rng.Intn(3) == 0 {
					caps[u][v] = 1 + rng.Int63n(50)
				}
			}
		}
		for _, run := range []func(network.WeightedGraph, ...Option) (Result, error){EdmondsKarp, Dinic} {
			res, err := run(caps)
			require.NoError(t, err)
			requireFeasible(t, res)
		}
	}
}

func TestResidualPairing(t *testing.T) {
	caps := network.Capacities{{0, 4}, {2, 0}}
	r, err := newResidual(caps)
	require.NoError(t, err)
	require.Len(t, r.arcs, 4, "two opposite capacities give two pairs")
	require.Equal(t, []int{0, 3}, r.out[0])
	require.Equal(t, []int{1, 2}, r.out[1])

	r.push(0, 3)
	require.EqualValues(t, 1, r.arcs[0].rem)
	require.EqualValues(t, 3, r.arcs[1].rem)
	require.Equal(t, 0, r.from(0))
	require.Equal(t, 1, r.from(1))
}
