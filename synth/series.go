// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// series.go - epidemic curve primitives shared by the region constructors.
//
// Model:
//   - Daily incidence follows the increments of a logistic curve of final
//     size total, centred on peak with the given width.
//   - With an RNG, increments get multiplicative Gaussian noise (sigma 0.25)
//     floored at zero.
//   - A correction on day t replaces the increment with a negative revision
//     of at most the previous day's increment, so the cumulative series
//     never drops below zero.

package synth

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const (
	noiseSigma     = 0.25
	ageSlope       = 0.5 // oldest bucket holds half the weight of the youngest
	populationSkew = 0.5 // totals drawn from population*[0.5,1.5)
)

// logistic returns the logistic curve value at day t.
func logistic(t, total, peak, width float64) float64 {
	return total / (1 + math.Exp(-(t-peak)/width))
}

// incidence returns the daily new cases of a logistic outbreak.
func incidence(rng *rand.Rand, days int, total, peak, width float64) []float64 {
	inc := make([]float64, days)
	prev := 0.0
	for t := 0; t < days; t++ {
		cur := math.Round(logistic(float64(t), total, peak, width))
		inc[t] = cur - prev
		prev = cur
	}
	if rng == nil {
		return inc
	}
	for t := range inc {
		inc[t] = math.Max(0, math.Round(inc[t]*(1+noiseSigma*rng.NormFloat64())))
	}

	return inc
}

// lagged returns round(ratio*inc[t-lag]), zero before the lag.
func lagged(inc []float64, ratio float64, lag int) []float64 {
	out := make([]float64, len(inc))
	for t := lag; t < len(inc); t++ {
		out[t] = math.Round(ratio * inc[t-lag])
	}

	return out
}

// correct applies downward revisions in place and reports how many days
// were revised. A nil rng or p == 0 leaves inc untouched.
func correct(rng *rand.Rand, inc []float64, p float64) int {
	if rng == nil || p == 0 {
		return 0
	}
	n := 0
	for t := 1; t < len(inc); t++ {
		if inc[t-1] <= 0 || rng.Float64() >= p {
			continue
		}
		inc[t] = -math.Floor(inc[t-1] * rng.Float64())
		if inc[t] < 0 {
			n++
		}
	}

	return n
}

// cumulative returns the running sum of inc.
func cumulative(inc []float64) []float64 {
	return floats.CumSum(make([]float64, len(inc)), inc)
}

// ageProfile splits total across n buckets with a linear decline in
// weight from youngest to oldest. Each bucket is rounded.
func ageProfile(total float64, n int) []float64 {
	w := make([]float64, n)
	for a := range w {
		w[a] = 1 - ageSlope*float64(a)/float64(n)
	}
	floats.Scale(total/floats.Sum(w), w)
	for a := range w {
		w[a] = math.Round(w[a])
	}

	return w
}

// regionPopulation draws a region total around mean; deterministic without rng.
func regionPopulation(rng *rand.Rand, mean float64) float64 {
	if rng == nil {
		return mean
	}

	return mean * (populationSkew + rng.Float64())
}
