// SPDX-License-Identifier: MIT
// Package adjacency: sentinel error set.
// Every message is prefixed with "adjacency: ..." for easy grepping across logs.
// Operations wrap these with fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.

package adjacency

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates that a nil *core.Indexed was passed to Build.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrOutOfRange indicates a row/column index outside [0, Dim()).
	ErrOutOfRange = errors.New("adjacency: index out of range")

	// ErrDimensionMismatch indicates an operand whose length differs from Dim().
	ErrDimensionMismatch = errors.New("adjacency: dimension mismatch")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight at ingestion.
	ErrInvalidWeight = errors.New("adjacency: invalid edge weight")

	// ErrBadAxis indicates a normalization axis other than Rows or Cols.
	ErrBadAxis = errors.New("adjacency: invalid axis")
)

func adjErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
