// SPDX-License-Identifier: MIT
// Package graphdata: sentinel error set.
// Schema errors (missing attribute / metadata, wrong attribute type) and shape
// errors (ragged sequences) fail construction; short rolling windows and empty
// coarse groups are not errors. Callers match with errors.Is.

package graphdata

import "errors"

var (
	// ErrEmptyGraph indicates a graph with no nodes.
	ErrEmptyGraph = errors.New("graphdata: graph has no nodes")

	// ErrMissingAttribute indicates a node without the requested attribute.
	ErrMissingAttribute = errors.New("graphdata: missing node attribute")

	// ErrAttributeType indicates an attribute value that is not numeric or a
	// numeric sequence, or that holds NaN/±Inf.
	ErrAttributeType = errors.New("graphdata: attribute is not numeric")

	// ErrShapeMismatch indicates attribute sequences of unequal length across
	// nodes, or an empty hierarchy-key sequence.
	ErrShapeMismatch = errors.New("graphdata: attribute shape mismatch")

	// ErrMissingMetadata indicates absent or non-string hierarchy-key metadata.
	ErrMissingMetadata = errors.New("graphdata: missing graph metadata")

	// ErrNegativeID indicates a hierarchy identifier below zero.
	ErrNegativeID = errors.New("graphdata: negative hierarchy id")

	// ErrIDTooLarge indicates a hierarchy identifier too large to index an
	// aggregation result (see backend.MaxElements).
	ErrIDTooLarge = errors.New("graphdata: hierarchy id too large")

	// ErrWindow indicates a rolling window smaller than 1.
	ErrWindow = errors.New("graphdata: rolling window must be >= 1")

	// ErrGroupMismatch indicates a group mapping whose length differs from the
	// leading axis of the aggregated array.
	ErrGroupMismatch = errors.New("graphdata: group mapping does not match array")

	// ErrInvalidOption indicates a nonsensical configuration value.
	ErrInvalidOption = errors.New("graphdata: invalid option")
)
