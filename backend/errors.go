// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Backend implementations.
var (
	// ErrUnknownBackend is returned by New for an unregistered backend name.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrRaggedRows indicates VStack rows of unequal length.
	ErrRaggedRows = errors.New("backend: rows have unequal length")

	// ErrEmptyInput indicates an operation that needs at least one element.
	ErrEmptyInput = errors.New("backend: empty input")

	// ErrShape indicates operands whose shapes do not fit the operation.
	ErrShape = errors.New("backend: incompatible shape")

	// ErrIndex indicates a scatter index outside [0, groups).
	ErrIndex = errors.New("backend: scatter index out of range")

	// ErrTooLarge indicates a result that would exceed MaxElements.
	ErrTooLarge = errors.New("backend: result too large")

	// ErrBadKernel indicates an empty convolution kernel.
	ErrBadKernel = errors.New("backend: empty convolution kernel")

	// ErrBadBounds indicates clip bounds with Min > Max, or NaN bounds.
	ErrBadBounds = errors.New("backend: invalid clip bounds")
)

func opErrorf(impl, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", impl, op, err)
}
