// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"reflect"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	queue []int
	res   *Result
}

// Walk runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func Walk(g Graph, start int) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrStartVertexNotFound, start, n)
	}

	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			Weight: make([]int64, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1, 0)
	w.loop()

	return w.res, nil
}

// enqueue marks id seen at depth d and records how it was reached.
func (w *walker) enqueue(id, d, parent int, weight int64) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.res.Weight[id] = weight
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		w.graph.ForEachNeighbor(u, func(v int, wt int64) {
			if w.res.Depth[v] == Unreached {
				w.enqueue(v, d+1, u, wt)
			}
		})
	}
}

// isNil catches typed nils such as a nil *network.SparseGraph.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		return v.IsNil()
	}

	return false
}
