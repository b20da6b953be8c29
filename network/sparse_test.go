// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibernet/network"
)

func TestToSparse(t *testing.T) {
	c := unitSquare()
	c.Distances[1][3] = network.NoLink
	c.Distances[3][1] = network.NoLink

	g := network.ToSparse(c.Distances)
	require.Equal(t, 4, g.Order())
	require.Equal(t, []network.Neighbor{{To: 1, Weight: 1}, {To: 2, Weight: 2}, {To: 3, Weight: 1}}, g.Adj[0])
	require.Equal(t, []network.Neighbor{{To: 0, Weight: 1}, {To: 2, Weight: 1}}, g.Adj[1])
	require.Equal(t, 10, g.Edges(), "5 undirected links stored in both directions")
}

func TestSparseRoundTrip(t *testing.T) {
	c := unitSquare()
	c.Distances.SetLink(0, 2, 0)
	c.Distances[1][3] = network.NoLink
	c.Distances[3][1] = network.NoLink

	back, err := network.FromSparse(network.ToSparse(c.Distances))
	require.NoError(t, err)
	if diff := cmp.Diff(c.Distances, back); diff != "" {
		t.Fatalf("dense→sparse→dense mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSparseRejectsBadEntries(t *testing.T) {
	g := network.NewSparseGraph(2)
	g.Adj[0] = []network.Neighbor{{To: 2, Weight: 1}}
	_, err := network.FromSparse(g)
	require.ErrorIs(t, err, network.ErrBadDimensions)

	g.Adj[0] = []network.Neighbor{{To: 0, Weight: 1}}
	_, err = network.FromSparse(g)
	require.ErrorIs(t, err, network.ErrBadDimensions)
}

func TestWeightedGraphViewsAgree(t *testing.T) {
	c := unitSquare()
	views := []network.WeightedGraph{c.Distances, network.ToSparse(c.Distances)}
	for _, g := range views {
		var got [][2]int64
		g.ForEachNeighbor(3, func(v int, w int64) { got = append(got, [2]int64{int64(v), w}) })
		require.Equal(t, [][2]int64{{0, 1}, {1, 2}, {2, 1}}, got)
	}
}

func TestCapacitiesView(t *testing.T) {
	caps := network.Capacities{{5, 0, 3}, {0, 0, 0}, {-1, 4, 0}}
	var arcs [][3]int64
	for u := 0; u < caps.Order(); u++ {
		caps.ForEachNeighbor(u, func(v int, w int64) { arcs = append(arcs, [3]int64{int64(u), int64(v), w}) })
	}
	require.Equal(t, [][3]int64{{0, 2, 3}, {2, 0, -1}, {2, 1, 4}}, arcs, "diagonal and zero cells are skipped")

	cp := caps.Clone()
	cp[0][2] = 100
	require.EqualValues(t, 3, caps[0][2], "clone is deep")
}

func TestDistancesHelpers(t *testing.T) {
	d := network.NewDistances(3)
	d.SetLink(0, 1, 8)
	require.Equal(t, 1, d.Degree(0))
	require.Equal(t, 0, d.Degree(2))

	w, ok := d.At(1, 0)
	require.True(t, ok)
	require.EqualValues(t, 8, w)
	_, ok = d.At(0, 5)
	require.False(t, ok)

	cp := d.Clone()
	cp.SetLink(1, 2, 1)
	_, ok = d.At(1, 2)
	require.False(t, ok, "clone is deep")
}

func TestServiceCenterDistance(t *testing.T) {
	s := network.ServiceCenter{ID: "A", X: 0, Y: 0}
	require.InDelta(t, 5.0, s.DistanceTo(network.Point{X: 3, Y: 4}), 1e-12)
}
