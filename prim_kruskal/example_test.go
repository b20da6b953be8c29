// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/fibernet/network"
	"github.com/katalvlaran/fibernet/prim_kruskal"
)

// ExamplePrim connects a pentagon A..E.
// Links: A-B(1), B-C(2), C-D(3), D-E(5), A-E(12); the tree drops A-E.
func ExamplePrim() {
	d := network.NewDistances(5)
	d.SetLink(0, 1, 1)
	d.SetLink(1, 2, 2)
	d.SetLink(2, 3, 3)
	d.SetLink(3, 4, 5)
	d.SetLink(0, 4, 12)

	tree, err := prim_kruskal.Prim(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range tree {
		fmt.Printf("%d-%d(%d) ", e.Parent, e.Child, e.Weight)
	}
	fmt.Println("total:", tree.Cost())
	// Output: 0-1(1) 1-2(2) 2-3(3) 3-4(5) total: 11
}

// ExampleKruskal runs the global pass on a triangle and roots it at node 0.
func ExampleKruskal() {
	d := network.NewDistances(3)
	d.SetLink(0, 1, 1)
	d.SetLink(1, 2, 2)
	d.SetLink(0, 2, 4)

	tree, err := prim_kruskal.Kruskal(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree, tree.Cost())
	// Output: [{0 1 1} {1 2 2}] 3
}

// ExampleBuild shows the disconnected error.
func ExampleBuild() {
	d := network.NewDistances(3)
	d.SetLink(0, 1, 7)

	_, err := prim_kruskal.Build(d, prim_kruskal.MethodPrim)
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected: node 2 unreachable from node 0
}
