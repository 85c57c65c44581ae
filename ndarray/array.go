// SPDX-License-Identifier: MIT

// Package ndarray - row-major N-dimensional storage with a dtype tag.
//
// Purpose:
//   - Carry the arrays exchanged between the numerical backend and the graph
//     pipeline: time × node series, age × node populations, per-node ids.
//   - Keep a single float64 buffer for every dtype; Int64 arrays hold integral
//     values only (every producer truncates toward zero), so counts and ids
//     survive arithmetic exactly up to 2^53.
//   - Allow zero-length axes: a rolling mean over a short series is an empty
//     array, not an error.
//   - Axis permutations (Transpose, SwapAxes, MoveAxis) are carried out by
//     gorgonia.org/tensor on the shared buffer layout.
//
// AI-Hints:
//   - Data() always copies; FromSlice takes ownership of its argument. Producers
//     build a fresh buffer and hand it over, consumers read a copy.
//   - Freeze() turns an array read-only; shared derived arrays are frozen.

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// DType tags the element kind of an Array.
type DType uint8

const (
	// Float64 arrays hold arbitrary float64 values.
	Float64 DType = iota
	// Int64 arrays hold integral values (stored as float64).
	Int64
)

// String implements fmt.Stringer.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("DType(%d)", uint8(d))
	}
}

// valid reports whether d is a known dtype.
func (d DType) valid() bool { return d == Float64 || d == Int64 }

// Array is a row-major N-dimensional array.
// A zero-dimensional array (empty shape) holds exactly one element.
type Array struct {
	shape  []int
	data   []float64
	dtype  DType
	frozen bool
}

// Zeros returns a zero-filled array of the given dtype and shape.
//
// Errors:
//   - ErrBadShape for negative extents, ErrDType for unknown dtypes.
//
// Complexity:
//   - Time O(size), Space O(size).
func Zeros(dtype DType, shape ...int) (*Array, error) {
	if !dtype.valid() {
		return nil, arrayErrorf("Zeros", ErrDType)
	}
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf("Zeros", err)
	}

	return &Array{shape: cloneInts(shape), data: make([]float64, n), dtype: dtype}, nil
}

// FromSlice wraps data as a Float64 array of the given shape.
// The array takes ownership of data; the caller must not modify it afterwards.
//
// Errors:
//   - ErrBadShape when the shape is invalid or does not match len(data).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	return fromSlice("FromSlice", Float64, data, shape)
}

// FromSliceAs is FromSlice with an explicit dtype. For Int64 the values are
// truncated toward zero in place.
func FromSliceAs(dtype DType, data []float64, shape ...int) (*Array, error) {
	if !dtype.valid() {
		return nil, arrayErrorf("FromSliceAs", ErrDType)
	}

	return fromSlice("FromSliceAs", dtype, data, shape)
}

// FromInts builds an Int64 array from integer data (copied).
func FromInts(data []int64, shape ...int) (*Array, error) {
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}

	return fromSlice("FromInts", Int64, buf, shape)
}

// Scalar returns a zero-dimensional Float64 array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}, dtype: Float64}
}

func fromSlice(method string, dtype DType, data []float64, shape []int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(method, err)
	}
	if n != len(data) {
		return nil, arrayErrorf(method, fmt.Errorf("shape %v needs %d elements, got %d: %w", shape, n, len(data), ErrBadShape))
	}
	if dtype == Int64 {
		truncate(data)
	}

	return &Array{shape: cloneInts(shape), data: data, dtype: dtype}, nil
}

// Shape returns a copy of the array shape.
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Dim returns the extent of axis (negative axes count from the end).
func (a *Array) Dim(axis int) (int, error) {
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return 0, arrayErrorf("Dim", err)
	}

	return a.shape[ax], nil
}

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// DType returns the element dtype.
func (a *Array) DType() DType { return a.dtype }

// Frozen reports whether the array rejects writes.
func (a *Array) Frozen() bool { return a.frozen }

// Freeze makes the array read-only and returns it for chaining.
func (a *Array) Freeze() *Array {
	a.frozen = true

	return a
}

// Data returns a copy of the row-major element buffer.
// Complexity: O(size).
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Ints returns a copy of the elements as int64. Only valid for Int64 arrays.
// Errors: ErrDType.
func (a *Array) Ints() ([]int64, error) {
	if a.dtype != Int64 {
		return nil, arrayErrorf("Ints", ErrDType)
	}
	out := make([]int64, len(a.data))
	for i, v := range a.data {
		out[i] = int64(v)
	}

	return out, nil
}

// offset computes the row-major offset of idx or returns ErrOutOfRange.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrOutOfRange
		}
		off = off*a.shape[ax] + i
	}

	return off, nil
}

// At returns the element at idx.
// Errors: ErrOutOfRange.
// Complexity: O(ndim).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf(fmt.Sprintf("At%v", idx), err)
	}

	return a.data[off], nil
}

// Set stores v at idx. Int64 arrays truncate v toward zero.
// Errors: ErrReadOnly, ErrOutOfRange.
func (a *Array) Set(v float64, idx ...int) error {
	if a.frozen {
		return arrayErrorf(fmt.Sprintf("Set%v", idx), ErrReadOnly)
	}
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf(fmt.Sprintf("Set%v", idx), err)
	}
	if a.dtype == Int64 {
		v = math.Trunc(v)
	}
	a.data[off] = v

	return nil
}

// Item returns the single element of a size-1 array.
// Errors: ErrNotScalar.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, arrayErrorf("Item", ErrNotScalar)
	}

	return a.data[0], nil
}

// Clone returns a writable deep copy (the copy is never frozen).
func (a *Array) Clone() *Array {
	return &Array{shape: cloneInts(a.shape), data: a.Data(), dtype: a.dtype}
}

// AsType returns a copy converted to dtype; Float64 → Int64 truncates toward zero.
// Errors: ErrDType.
func (a *Array) AsType(dtype DType) (*Array, error) {
	if !dtype.valid() {
		return nil, arrayErrorf("AsType", ErrDType)
	}
	out := a.Clone()
	out.dtype = dtype
	if dtype == Int64 {
		truncate(out.data)
	}

	return out, nil
}

// String renders small arrays for diagnostics, e.g. "int64[2 3]{1, 2, 3, 4, 5, 6}".
func (a *Array) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%v{", a.dtype, a.shape)
	for i, v := range a.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("}")

	return sb.String()
}

// truncate rounds every element toward zero (Int64 invariant).
func truncate(data []float64) {
	for i, v := range data {
		data[i] = math.Trunc(v)
	}
}

// sizeOf validates shape and returns the element count.
func sizeOf(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("negative extent in %v: %w", shape, ErrBadShape)
		}
		n *= d
	}

	return n, nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
