// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng            = nil (no noise, no corrections unless seeded)
//   - weightFn       = DefaultWeightFn
//   - names          = graphdata.DefaultAttributeNames()
//   - days           = 60
//   - ageBuckets     = 16
//   - population     = 50000 per region
//   - attackRate     = 0.1
//   - fatality       = 0.02, deathLag = 14 days
//   - correctionProb = 0
//
// AI-Hints:
//   - Set WithSeed for population jitter, noisy curves and data corrections.
//   - WithCorrections(p>0) without an RNG fails at build time with ErrNeedRandSource.

package synth

import (
	"math/rand"

	"github.com/katalvlaran/regiongraph/graphdata"
)

// config aggregates all generator knobs. Constructors receive it by value.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
	names    graphdata.AttributeNames

	days           int
	ageBuckets     int
	population     float64
	attackRate     float64
	fatality       float64
	deathLag       int
	correctionProb float64
}

const (
	defaultDays       = 60
	defaultAgeBuckets = 16
	defaultPopulation = 50000.0
	defaultAttackRate = 0.1
	defaultFatality   = 0.02
	defaultDeathLag   = 14
)

// newConfig applies opts over the defaults; last option wins.
func newConfig(opts ...Option) config {
	cfg := config{
		weightFn:   DefaultWeightFn,
		names:      graphdata.DefaultAttributeNames(),
		days:       defaultDays,
		ageBuckets: defaultAgeBuckets,
		population: defaultPopulation,
		attackRate: defaultAttackRate,
		fatality:   defaultFatality,
		deathLag:   defaultDeathLag,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
