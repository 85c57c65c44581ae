// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/regiongraph/core"
)

// Components labels the weakly connected components of ix.
// Labels are assigned in order of each component's smallest node index,
// so node 0 is always in component 0. sizes[k] is the size of component k.
//
// Complexity: O(V + E log E).
func Components(ix *core.Indexed) (labels, sizes []int, err error) {
	if ix == nil {
		return nil, nil, ErrGraphNil
	}
	adj := neighbors(ix, true)
	labels = make([]int, len(adj))
	for i := range labels {
		labels[i] = -1
	}

	o := DefaultOptions()
	for start := range adj {
		if labels[start] >= 0 {
			continue
		}
		w := newWalker(adj, o)
		w.enqueue(start, 0, -1)
		if err := w.loop(); err != nil {
			return nil, nil, err
		}
		k := len(sizes)
		for _, v := range w.res.Order {
			labels[v] = k
		}
		sizes = append(sizes, len(w.res.Order))
	}

	return labels, sizes, nil
}
