// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"gorgonia.org/tensor"
)

// NormalizeAxis maps a possibly negative axis onto [0, ndim).
// Errors: ErrAxis.
func NormalizeAxis(axis, ndim int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, fmt.Errorf("axis %d for ndim %d: %w", axis, ndim, ErrAxis)
	}

	return axis, nil
}

// Reshape returns a copy with a new shape of the same size.
// One extent may be -1 and is inferred.
//
// Errors:
//   - ErrBadShape when sizes disagree or more than one extent is -1.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	shape = cloneInts(shape)
	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, arrayErrorf("Reshape", fmt.Errorf("extent %d in %v: %w", d, shape, ErrBadShape))
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || len(a.data)%known != 0 {
			return nil, arrayErrorf("Reshape", fmt.Errorf("cannot infer %v from size %d: %w", shape, len(a.data), ErrBadShape))
		}
		shape[infer] = len(a.data) / known
		known = len(a.data)
	}
	if known != len(a.data) {
		return nil, arrayErrorf("Reshape", fmt.Errorf("size %d into %v: %w", len(a.data), shape, ErrBadShape))
	}

	return &Array{shape: shape, data: a.Data(), dtype: a.dtype}, nil
}

// Transpose returns a copy with axes permuted by perm (reverse order if perm is empty).
// Arrays of rank 2 and above are permuted by gorgonia.org/tensor.
//
// Errors:
//   - ErrAxis when perm is not a permutation of [0, ndim).
//
// Complexity:
//   - Time O(size·ndim), Space O(size).
func (a *Array) Transpose(perm ...int) (*Array, error) {
	nd := len(a.shape)
	perm = cloneInts(perm)
	if len(perm) == 0 {
		perm = make([]int, nd)
		for i := range perm {
			perm[i] = nd - 1 - i
		}
	}
	if len(perm) != nd {
		return nil, arrayErrorf("Transpose", fmt.Errorf("perm %v for ndim %d: %w", perm, nd, ErrAxis))
	}
	seen := make([]bool, nd)
	for i, p := range perm {
		ax, err := NormalizeAxis(p, nd)
		if err != nil || seen[ax] {
			return nil, arrayErrorf("Transpose", fmt.Errorf("perm %v: %w", perm, ErrAxis))
		}
		seen[ax] = true
		perm[i] = ax
	}

	outShape := make([]int, nd)
	for i, p := range perm {
		outShape[i] = a.shape[p]
	}
	if nd < 2 || len(a.data) == 0 {
		return &Array{shape: outShape, data: a.Data(), dtype: a.dtype}, nil
	}
	data, err := permute(a.shape, a.Data(), perm)
	if err != nil {
		return nil, arrayErrorf("Transpose", err)
	}

	return &Array{shape: outShape, data: data, dtype: a.dtype}, nil
}

// permute materializes an axis permutation of a row-major buffer with
// gorgonia's tensor.Dense: T records the permutation, Transpose moves the data.
// The buffer is reordered in place and returned.
func permute(shape []int, data []float64, perm []int) ([]float64, error) {
	t := tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data))
	if err := t.T(perm...); err != nil {
		return nil, fmt.Errorf("perm %v: %v: %w", perm, err, ErrAxis)
	}
	if err := t.Transpose(); err != nil {
		return nil, fmt.Errorf("perm %v: %v: %w", perm, err, ErrAxis)
	}

	return t.Float64s(), nil
}

// SwapAxes returns a copy with axes i and j exchanged.
// Errors: ErrAxis.
func (a *Array) SwapAxes(i, j int) (*Array, error) {
	nd := len(a.shape)
	ai, err := NormalizeAxis(i, nd)
	if err != nil {
		return nil, arrayErrorf("SwapAxes", err)
	}
	aj, err := NormalizeAxis(j, nd)
	if err != nil {
		return nil, arrayErrorf("SwapAxes", err)
	}
	perm := make([]int, nd)
	for k := range perm {
		perm[k] = k
	}
	perm[ai], perm[aj] = perm[aj], perm[ai]

	return a.Transpose(perm...)
}

// MoveAxis returns a copy with axis src moved to position dst,
// the remaining axes keeping their relative order.
// Errors: ErrAxis.
func (a *Array) MoveAxis(src, dst int) (*Array, error) {
	nd := len(a.shape)
	s, err := NormalizeAxis(src, nd)
	if err != nil {
		return nil, arrayErrorf("MoveAxis", err)
	}
	d, err := NormalizeAxis(dst, nd)
	if err != nil {
		return nil, arrayErrorf("MoveAxis", err)
	}
	rest := make([]int, 0, nd)
	for k := 0; k < nd; k++ {
		if k != s {
			rest = append(rest, k)
		}
	}
	perm := make([]int, 0, nd)
	perm = append(perm, rest[:d]...)
	perm = append(perm, s)
	perm = append(perm, rest[d:]...)

	return a.Transpose(perm...)
}

// SameShape reports whether a and b have identical shapes.
func SameShape(a, b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return true
}
