// SPDX-License-Identifier: MIT

package graphdata

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/ndarray"
)

// NodeAttr is the result of ReadNodeAttr.
// Raw is [L, N] (sequence index × node). Diff is [L-1, N] and only set when
// WithDiff was requested; DiffClipped counts Diff elements the clip bounds
// changed (e.g. negative increments from data corrections).
type NodeAttr struct {
	Raw         *ndarray.Array
	Diff        *ndarray.Array
	DiffClipped int
}

// AttrOption configures ReadNodeAttr.
type AttrOption func(*attrConfig)

type attrConfig struct {
	diff   bool
	dtype  ndarray.DType
	bounds backend.Bounds
}

// WithDiff also computes the first difference along the sequence axis.
func WithDiff() AttrOption {
	return func(c *attrConfig) { c.diff = true }
}

// WithDType converts the stacked values (Int64 truncates toward zero).
func WithDType(dt ndarray.DType) AttrOption {
	return func(c *attrConfig) { c.dtype = dt }
}

// WithClip replaces both clip bounds.
func WithClip(b backend.Bounds) AttrOption {
	return func(c *attrConfig) { c.bounds = b }
}

// WithMin sets the lower clip bound.
func WithMin(min float64) AttrOption {
	return func(c *attrConfig) { c.bounds.Min, c.bounds.HasMin = min, true }
}

// WithMax sets the upper clip bound.
func WithMax(max float64) AttrOption {
	return func(c *attrConfig) { c.bounds.Max, c.bounds.HasMax = max, true }
}

// ReadNodeAttr EXTRACTS attribute name from every node of ix into an
// [L, N] array whose column i is node i.
// Implementation:
//   - Stage 1: read each node's value in canonical order; coerce to []float64.
//   - Stage 2: VStack into [N, L], convert dtype, transpose to [L, N].
//   - Stage 3: clip when any bound is set.
//   - Stage 4 (WithDiff): Diff along axis 0 of the clipped array, convert dtype,
//     then clip the difference again with the same bounds.
//
// Behavior highlights:
//   - The two clips are independent: a cumulative count may clip at 0 while its
//     increment clips at 0 separately.
//   - Scalar attributes are one-element sequences (L = 1).
//
// Errors:
//   - ErrEmptyGraph, ErrMissingAttribute, ErrAttributeType, ErrShapeMismatch,
//     backend errors (e.g. backend.ErrBadBounds).
//
// Complexity:
//   - Time O(N·L), Space O(N·L).
func ReadNodeAttr(b backend.Backend, ix *core.Indexed, name string, opts ...AttrOption) (*NodeAttr, error) {
	if b == nil {
		b = backend.Default()
	}
	if ix == nil {
		return nil, fmt.Errorf("ReadNodeAttr(%q): %w", name, core.ErrNilGraph)
	}
	cfg := attrConfig{dtype: ndarray.Float64}
	for _, set := range opts {
		set(&cfg)
	}

	n := ix.Len()
	if n == 0 {
		return nil, fmt.Errorf("ReadNodeAttr(%q): %w", name, ErrEmptyGraph)
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		label, _ := ix.Label(i)
		v, ok := ix.NodeAttr(i, name)
		if !ok {
			return nil, fmt.Errorf("ReadNodeAttr(%q): node %q: %w", name, label, ErrMissingAttribute)
		}
		row, err := toFloats(v)
		if err != nil {
			return nil, fmt.Errorf("ReadNodeAttr(%q): node %q: %w", name, label, err)
		}
		if i > 0 && len(row) != len(rows[0]) {
			first, _ := ix.Label(0)
			return nil, fmt.Errorf("ReadNodeAttr(%q): node %q has %d values, node %q has %d: %w",
				name, label, len(row), first, len(rows[0]), ErrShapeMismatch)
		}
		rows[i] = row
	}

	stacked, err := b.VStack(rows)
	if err != nil {
		return nil, fmt.Errorf("ReadNodeAttr(%q): %w", name, err)
	}
	if stacked, err = stacked.AsType(cfg.dtype); err != nil {
		return nil, fmt.Errorf("ReadNodeAttr(%q): %w", name, err)
	}
	raw, err := b.Transpose(stacked)
	if err != nil {
		return nil, fmt.Errorf("ReadNodeAttr(%q): %w", name, err)
	}
	if cfg.bounds.Active() {
		if raw, err = b.Clip(raw, cfg.bounds); err != nil {
			return nil, fmt.Errorf("ReadNodeAttr(%q): %w", name, err)
		}
	}
	out := &NodeAttr{Raw: raw}
	if !cfg.diff {
		return out, nil
	}

	d, err := b.Diff(raw, 0)
	if err != nil {
		return nil, fmt.Errorf("ReadNodeAttr(%q): diff: %w", name, err)
	}
	if d, err = d.AsType(cfg.dtype); err != nil {
		return nil, fmt.Errorf("ReadNodeAttr(%q): diff: %w", name, err)
	}
	if cfg.bounds.Active() {
		clipped, err := b.Clip(d, cfg.bounds)
		if err != nil {
			return nil, fmt.Errorf("ReadNodeAttr(%q): diff: %w", name, err)
		}
		out.DiffClipped = countChanged(d, clipped)
		d = clipped
	}
	out.Diff = d

	return out, nil
}

// countChanged counts positions where a and b differ (same shape assumed).
func countChanged(a, b *ndarray.Array) int {
	ad, bd := a.Data(), b.Data()
	n := 0
	for i := range ad {
		if ad[i] != bd[i] {
			n++
		}
	}

	return n
}

// toFloats coerces a numeric attribute value into a fresh []float64.
// Scalars become one-element slices. NaN and ±Inf are rejected: clipping
// cannot repair them and they would poison every derived sum.
func toFloats(v interface{}) ([]float64, error) {
	out, err := numbers(v)
	if err != nil {
		return nil, err
	}
	for i, f := range out {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("element %d is %v: %w", i, f, ErrAttributeType)
		}
	}

	return out, nil
}

func numbers(v interface{}) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...), nil
	case []float32:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case []int:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case []interface{}:
		// decoded JSON arrays
		out := make([]float64, len(x))
		for i, e := range x {
			f, ok := scalar(e)
			if !ok {
				return nil, fmt.Errorf("element %d is %T: %w", i, e, ErrAttributeType)
			}
			out[i] = f
		}
		return out, nil
	}
	if f, ok := scalar(v); ok {
		return []float64{f}, nil
	}

	return nil, fmt.Errorf("value of type %T: %w", v, ErrAttributeType)
}

func scalar(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
