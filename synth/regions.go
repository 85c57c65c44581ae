// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// regions.go - Regions(rows, cols): a grid of fine regions grouped by row.
//
// Model:
//   - Row r is coarse region r+1; cell (r,c) is fine region (r+1)*1000+c+1,
//     labelled with the zero-padded five-digit code ("01001", "01002", ...).
//     Coarse code 0 is never used, so coarse aggregates keep an empty slot 0.
//   - Each region carries cumulative case and death series of cfg.days
//     entries, an age-stratified population of cfg.ageBuckets entries, and
//     its fine and coarse codes under FineAttr and CoarseAttr.
//   - The graph metadata keys cfg.names.FineKey and cfg.names.CoarseKey name
//     those two attributes.
//   - Edges join right and bottom neighbours. In directed graphs the reverse
//     arc is emitted too. Weights come from cfg.weightFn on weighted graphs.
//   - The outbreak starts in the top-left corner; peaks drift later with
//     Manhattan distance from it.
//
// Complexity:
//   - Time O(rows*cols*(days+ageBuckets)), Space O(days) scratch per region.

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regiongraph/core"
)

const (
	methodRegions = "Regions"
	minGridDim    = 1
	maxGridCols   = 999
	maxGridRows   = 99
	codeBase      = 1000

	// FineAttr and CoarseAttr are the vertex attributes holding region codes.
	FineAttr   = "adm2"
	CoarseAttr = "adm1"

	peakStart = 0.3 // first peak at 30% of the horizon
	peakDrift = 0.4 // the far corner peaks 40% later
	widthDiv  = 12  // logistic width = days/12
)

// RegionID returns the vertex label of grid cell (r,c).
func RegionID(r, c int) string {
	return fmt.Sprintf("%05d", fineCode(r, c))
}

func fineCode(r, c int) int { return (r+1)*codeBase + c + 1 }

// Regions returns a Constructor adding a rows×cols grid of regions.
//
// Errors: ErrTooFewRegions, ErrTooManyRegions, ErrInvalidProbability,
// ErrNeedRandSource, and core errors from vertex or edge insertion.
func Regions(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return synthErrorf(methodRegions, "rows=%d, cols=%d < %d", ErrTooFewRegions, rows, cols, minGridDim)
		}
		if rows > maxGridRows || cols > maxGridCols {
			return synthErrorf(methodRegions, "rows=%d > %d or cols=%d > %d", ErrTooManyRegions,
				rows, maxGridRows, cols, maxGridCols)
		}
		if cfg.correctionProb < 0 || cfg.correctionProb > 1 {
			return synthErrorf(methodRegions, "corrections=%g", ErrInvalidProbability, cfg.correctionProb)
		}
		if cfg.correctionProb > 0 && cfg.rng == nil {
			return synthErrorf(methodRegions, "corrections=%g", ErrNeedRandSource, cfg.correctionProb)
		}

		if err := g.SetAttr(cfg.names.FineKey, FineAttr); err != nil {
			return synthErrorf(methodRegions, "SetAttr(%s)", err, cfg.names.FineKey)
		}
		if err := g.SetAttr(cfg.names.CoarseKey, CoarseAttr); err != nil {
			return synthErrorf(methodRegions, "SetAttr(%s)", err, cfg.names.CoarseKey)
		}

		days := float64(cfg.days)
		width := math.Max(1, days/widthDiv)
		span := float64(rows + cols)

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := RegionID(r, c)
				pop := regionPopulation(cfg.rng, cfg.population)
				peak := days * (peakStart + peakDrift*float64(r+c)/span)

				cases := incidence(cfg.rng, cfg.days, pop*cfg.attackRate, peak, width)
				deaths := lagged(cases, cfg.fatality, cfg.deathLag)
				correct(cfg.rng, cases, cfg.correctionProb)
				correct(cfg.rng, deaths, cfg.correctionProb)

				attrs := map[string]interface{}{
					cfg.names.Cases:      cumulative(cases),
					cfg.names.Deaths:     cumulative(deaths),
					cfg.names.Population: ageProfile(pop, cfg.ageBuckets),
					FineAttr:             fineCode(r, c),
					CoarseAttr:           r + 1,
				}
				if err := g.AddVertexWithAttrs(id, attrs); err != nil {
					return synthErrorf(methodRegions, "AddVertex(%s)", err, id)
				}
			}
		}

		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := RegionID(r, c)
				if c+1 < cols {
					if err := link(g, cfg, u, RegionID(r, c+1)); err != nil {
						return synthErrorf(methodRegions, "right of %s", err, u)
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, u, RegionID(r+1, c)); err != nil {
						return synthErrorf(methodRegions, "below %s", err, u)
					}
				}
			}
		}

		return nil
	}
}

// link adds u-v, or u→v and v→u on directed graphs, with one drawn weight.
func link(g *core.Graph, cfg config, u, v string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return err
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return err
		}
	}

	return nil
}
