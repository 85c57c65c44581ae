// SPDX-License-Identifier: MIT
// Package: regiongraph/synth
//
// errors.go - sentinel errors for the synth package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach method context with %w (see synthErrorf).
//   - Option constructors (WithX) panic on meaningless values; constructors never panic.

package synth

import (
	"errors"
	"fmt"
)

// ErrTooFewRegions indicates a grid dimension below the allowed minimum.
var ErrTooFewRegions = errors.New("synth: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("synth: probability out of range")

// ErrNeedRandSource indicates a stochastic step ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("synth: rng is required")

// ErrTooManyRegions indicates a grid too wide for five-digit region codes.
var ErrTooManyRegions = errors.New("synth: parameter too large")

// ErrConstructFailed indicates a nil constructor or a rejected graph mutation.
var ErrConstructFailed = errors.New("synth: construction failed")

// synthErrorf returns an error of the form "<method>: <msg>: <err>".
func synthErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
