// SPDX-License-Identifier: MIT

package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/tsp"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name string
		tour []int
		n    int
		ok   bool
	}{
		{"closed square", []int{0, 1, 2, 3, 0}, 4, true},
		{"other start", []int{2, 0, 1, 2}, 3, true},
		{"single node", []int{0, 0}, 1, true},
		{"open", []int{0, 1, 2, 3}, 4, false},
		{"not closed", []int{0, 1, 2, 1}, 3, false},
		{"duplicate", []int{0, 1, 1, 0}, 3, false},
		{"out of range", []int{0, 5, 1, 0}, 3, false},
		{"empty n", []int{}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
			}
		})
	}
}

func TestTourCost(t *testing.T) {
	d := network.NewDistances(3)
	d.SetLink(0, 1, 4)
	d.SetLink(1, 2, 5)
	d.SetLink(2, 0, 0)

	cost, err := tsp.TourCost(d, []int{0, 1, 2, 0})
	require.NoError(t, err)
	require.EqualValues(t, 9, cost, "zero-length links count as present")

	d[0][2], d[2][0] = network.NoLink, network.NoLink
	_, err = tsp.TourCost(d, []int{0, 1, 2, 0})
	require.ErrorIs(t, err, tsp.ErrMissingArc)
	require.Contains(t, err.Error(), "2→0")

	_, err = tsp.TourCost(d, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.TourCost(d, []int{0, 7})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestLegKindString(t *testing.T) {
	require.Equal(t, "direct", tsp.Direct.String())
	require.Equal(t, "two-hop", tsp.TwoHop.String())
	require.Equal(t, "fallback", tsp.Fallback.String())
	require.Equal(t, "closing", tsp.Closing.String())
	require.Equal(t, "unknown", tsp.LegKind(42).String())

	b, err := tsp.TwoHop.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "two-hop", string(b))
}
