// SPDX-License-Identifier: MIT

// Package synth generates deterministic synthetic region graphs: a grid of
// fine regions grouped into coarse regions by row, each carrying cumulative
// case and death series and an age-stratified population in the attribute
// layout graphdata.New reads.
//
// Generation composes Constructors under one resolved configuration:
//
//   - Regions(rows, cols) adds the regions, their series and grid edges.
//   - Commuters(p) adds random long-range mobility edges.
//
// Randomness only enters through WithSeed or WithRand. Without an RNG the
// curves are smooth logistic increments and every region has the mean
// population, which makes small grids convenient golden fixtures. With
// WithCorrections(p) some days carry downward revisions of the cumulative
// series, the reporting artefact that graphdata clips to zero increments.
package synth
