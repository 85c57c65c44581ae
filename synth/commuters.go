// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// commuters.go - Commuters(p): long-range mobility links between existing regions.
//
// Model:
//   - Erdős–Rényi over the regions already in g: every pair without an edge
//     is linked independently with probability p.
//   - Undirected graphs try unordered pairs i<j; directed graphs try ordered
//     pairs i≠j. Trial order follows vertex insertion order.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p ∈ {0,1} is deterministic.

package synth

import (
	"github.com/katalvlaran/regiongraph/core"
)

const methodCommuters = "Commuters"

// Commuters returns a Constructor adding random mobility edges.
func Commuters(p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if p < 0 || p > 1 {
			return synthErrorf(methodCommuters, "p=%.6f not in [0,1]", ErrInvalidProbability, p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return synthErrorf(methodCommuters, "p=%.6f", ErrNeedRandSource, p)
		}
		if p == 0 {
			return nil
		}

		ids := g.VerticesInOrder()
		directed := g.Directed()
		useWeight := g.Weighted()

		var (
			i, j int
			w    float64
		)
		for i = range ids {
			for j = range ids {
				if i == j || (!directed && j < i) {
					continue
				}
				if g.HasEdge(ids[i], ids[j]) {
					continue
				}
				if cfg.rng != nil && cfg.rng.Float64() >= p {
					continue
				}
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}
				if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return synthErrorf(methodCommuters, "AddEdge(%s→%s, w=%g)", err, ids[i], ids[j], w)
				}
			}
		}

		return nil
	}
}
