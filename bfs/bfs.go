// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/regiongraph/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// neighbors builds sorted, de-duplicated out-neighbour lists. Undirected
// edges, and all edges when weak, are followed both ways. Self-loops are dropped.
func neighbors(ix *core.Indexed, weak bool) [][]int {
	adj := make([][]int, ix.Len())
	for _, e := range ix.Edges() {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		if !e.Directed || weak {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}
	for i, list := range adj {
		sort.Ints(list)
		out := list[:0]
		for k, v := range list {
			if k == 0 || v != list[k-1] {
				out = append(out, v)
			}
		}
		adj[i] = out
	}

	return adj
}

// BFS runs breadth-first search on ix from node start.
// Neighbours are expanded in ascending index order, so the visit order is
// deterministic for a given snapshot. Edge weights are ignored.
//
// Errors: ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, context
// errors, and OnVisit errors.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func BFS(ix *core.Indexed, start int, opts ...Option) (*Result, error) {
	if ix == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= ix.Len() {
		return nil, fmt.Errorf("bfs: start %d of %d: %w", start, ix.Len(), ErrStartOutOfRange)
	}

	w := newWalker(neighbors(ix, o.Weak), o)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func newWalker(adj [][]int, o Options) *walker {
	n := len(adj)
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i], res.Parent[i] = -1, -1
	}

	return &walker{adj: adj, opts: o, ctx: o.Ctx, queue: make([]int, 0, n), res: res}
}

func (w *walker) enqueue(node, depth, parent int) {
	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	w.queue = append(w.queue, node)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[node]
		w.res.Order = append(w.res.Order, node)
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", node, err)
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[node] {
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, depth+1, node)
			}
		}
	}

	return nil
}
