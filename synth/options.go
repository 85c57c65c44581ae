// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// options.go - functional options for the generator.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Generators themselves never panic; they return sentinel errors.
//   - Seeding is explicit via WithSeed or WithRand.

package synth

import (
	"math/rand"

	"github.com/katalvlaran/regiongraph/graphdata"
)

// Option customizes generation by mutating config before any constructor runs.
type Option func(*config)

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches r as the shared random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the mobility edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("synth: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithAttributeNames sets the attribute and metadata keys written to the
// graph. Empty fields keep the defaults, mirroring graphdata.WithAttributeNames.
func WithAttributeNames(names graphdata.AttributeNames) Option {
	return func(c *config) {
		def := graphdata.DefaultAttributeNames()
		c.names = graphdata.AttributeNames{
			Cases:      pick(names.Cases, def.Cases),
			Deaths:     pick(names.Deaths, def.Deaths),
			Population: pick(names.Population, def.Population),
			FineKey:    pick(names.FineKey, def.FineKey),
			CoarseKey:  pick(names.CoarseKey, def.CoarseKey),
		}
	}
}

// WithDays sets the length of every cumulative series. Panics if days < 1.
func WithDays(days int) Option {
	if days < 1 {
		panic("synth: WithDays(days<1)")
	}

	return func(c *config) { c.days = days }
}

// WithAgeBuckets sets the number of population age strata. Panics if n < 1.
func WithAgeBuckets(n int) Option {
	if n < 1 {
		panic("synth: WithAgeBuckets(n<1)")
	}

	return func(c *config) { c.ageBuckets = n }
}

// WithPopulation sets the mean total population of a region. Panics if p <= 0.
func WithPopulation(p float64) Option {
	if p <= 0 {
		panic("synth: WithPopulation(p<=0)")
	}

	return func(c *config) { c.population = p }
}

// WithAttackRate sets the fraction of a region eventually reported as cases.
// Panics outside [0,1].
func WithAttackRate(r float64) Option {
	if r < 0 || r > 1 {
		panic("synth: WithAttackRate(r∉[0,1])")
	}

	return func(c *config) { c.attackRate = r }
}

// WithFatality sets the case fatality ratio and the case-to-death lag in
// days. Panics if cfr is outside [0,1] or lag < 0.
func WithFatality(cfr float64, lag int) Option {
	if cfr < 0 || cfr > 1 || lag < 0 {
		panic("synth: WithFatality(cfr∉[0,1] or lag<0)")
	}

	return func(c *config) { c.fatality, c.deathLag = cfr, lag }
}

// WithCorrections sets the per-day probability that a reporting correction
// revises a cumulative series downward. Validated at build time.
func WithCorrections(p float64) Option {
	return func(c *config) { c.correctionProb = p }
}

func pick(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
