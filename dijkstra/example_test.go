// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/fibernet/dijkstra"
	"github.com/katalvlaran/fibernet/network"
)

// ExampleDijkstra finds the cheaper two-hop route around a square whose
// direct diagonal 0-2 costs 5.
func ExampleDijkstra() {
	d := network.NewDistances(4)
	d.SetLink(0, 1, 1)
	d.SetLink(1, 2, 1)
	d.SetLink(2, 3, 4)
	d.SetLink(3, 0, 1)
	d.SetLink(0, 2, 5)

	res, err := dijkstra.Dijkstra(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	fmt.Println(res.Path(2))
	// Output:
	// [0 1 2 1]
	// [0 1 2]
}
