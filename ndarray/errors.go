// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped with
// call-site context via fmt.Errorf("ctx: %w", ErrX)); callers match with errors.Is.
// No function in this package panics on user-triggered conditions.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has a negative extent, or does not
	// match the number of elements supplied.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside the array bounds, or an index
	// tuple of the wrong length.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrAxis indicates an axis outside [-ndim, ndim).
	ErrAxis = errors.New("ndarray: axis out of range")

	// ErrReadOnly is returned by Set on a frozen array.
	ErrReadOnly = errors.New("ndarray: array is read-only")

	// ErrDType indicates an operation that is not valid for the array dtype
	// (e.g. Ints on a Float64 array) or an unknown dtype.
	ErrDType = errors.New("ndarray: unsupported dtype")

	// ErrNotScalar is returned by Item when the array holds more than one element.
	ErrNotScalar = errors.New("ndarray: array is not a scalar")
)

// arrayErrorf wraps err with a uniform "ndarray.<method>: " context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("ndarray.%s: %w", method, err)
}
