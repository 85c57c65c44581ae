// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// api.go - public entry points of the generator.
//
// Contract:
//   - One orchestrator: Build(gopts, opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.
//   - Constructors share cfg.rng, so reordering them changes the random stream.

package synth

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved config.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a graph with gopts, resolves opts, and applies cons in order.
// Constructor errors are wrapped as "Build: %w" and returned immediately.
//
// Typical use:
//
//	g, err := synth.Build(
//		[]core.GraphOption{core.WithWeighted()},
//		[]synth.Option{synth.WithSeed(7), synth.WithCorrections(0.05)},
//		synth.Regions(3, 4),
//		synth.Commuters(0.1),
//	)
func Build(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph with freshly resolved options.
func Apply(g *core.Graph, opts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
