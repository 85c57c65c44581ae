// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/katalvlaran/regiongraph/ndarray"
)

// Native implements Backend with plain strided loops over the row-major buffer.
// It is the reference implementation the gonum backend is checked against.
type Native struct{}

var _ Backend = Native{}

// Name implements Backend.
func (Native) Name() string { return NameNative }

// VStack implements Backend.
// Complexity: O(rows·width).
func (Native) VStack(rows [][]float64) (*ndarray.Array, error) {
	width, err := checkRows(rows)
	if err != nil {
		return nil, opErrorf(NameNative, "VStack", err)
	}
	buf := make([]float64, 0, len(rows)*width)
	for _, r := range rows {
		buf = append(buf, r...)
	}

	return ndarray.FromSlice(buf, len(rows), width)
}

// Transpose implements Backend.
func (Native) Transpose(a *ndarray.Array) (*ndarray.Array, error) {
	out, err := a.Transpose()
	if err != nil {
		return nil, opErrorf(NameNative, "Transpose", err)
	}

	return out, nil
}

// Diff implements Backend.
//
// Implementation:
//   - out[o, k, i] = a[o, k+1, i] - a[o, k, i] over the (outer, n, inner) layout.
//
// Complexity: O(size).
func (Native) Diff(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	shape := a.Shape()
	ax, err := ndarray.NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, opErrorf(NameNative, "Diff", err)
	}
	outer, n, inner := layout(shape, ax)
	src := a.Data()
	outShape := shrinkAxis(shape, ax)
	m := outShape[ax]
	out := make([]float64, outer*m*inner)
	for o := 0; o < outer; o++ {
		for k := 0; k < m; k++ {
			for i := 0; i < inner; i++ {
				out[(o*m+k)*inner+i] = src[(o*n+k+1)*inner+i] - src[(o*n+k)*inner+i]
			}
		}
	}

	return ndarray.FromSliceAs(a.DType(), out, outShape...)
}

// Clip implements Backend.
func (Native) Clip(a *ndarray.Array, b Bounds) (*ndarray.Array, error) {
	if err := b.Validate(); err != nil {
		return nil, opErrorf(NameNative, "Clip", err)
	}
	buf := a.Data()
	if b.Active() {
		for i, v := range buf {
			buf[i] = b.apply(v)
		}
	}

	return ndarray.FromSliceAs(a.DType(), buf, a.Shape()...)
}

// ConvolveValid implements Backend.
// Complexity: O(len(x)·len(kernel)).
func (Native) ConvolveValid(x, kernel []float64) ([]float64, error) {
	m := len(kernel)
	if m == 0 {
		return nil, opErrorf(NameNative, "ConvolveValid", ErrBadKernel)
	}
	n := len(x) - m + 1
	if n <= 0 {
		return []float64{}, nil
	}
	out := make([]float64, n)
	for i := range out {
		var s float64
		for j := 0; j < m; j++ {
			s += x[i+j] * kernel[m-1-j]
		}
		out[i] = s
	}

	return out, nil
}

// SumAxis implements Backend.
func (Native) SumAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	shape := a.Shape()
	ax, err := ndarray.NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, opErrorf(NameNative, "SumAxis", err)
	}
	outer, n, inner := layout(shape, ax)
	src := a.Data()
	out := make([]float64, outer*inner)
	for o := 0; o < outer; o++ {
		for k := 0; k < n; k++ {
			for i := 0; i < inner; i++ {
				out[o*inner+i] += src[(o*n+k)*inner+i]
			}
		}
	}

	return ndarray.FromSliceAs(a.DType(), out, dropAxis(shape, ax)...)
}

// Max implements Backend.
// Errors: ErrEmptyInput.
func (Native) Max(a *ndarray.Array) (*ndarray.Array, error) {
	src := a.Data()
	if len(src) == 0 {
		return nil, opErrorf(NameNative, "Max", ErrEmptyInput)
	}
	best := src[0]
	for _, v := range src[1:] {
		if v > best {
			best = v
		}
	}

	return ndarray.FromSliceAs(a.DType(), []float64{best})
}

// ScatterAdd implements Backend.
// Complexity: O(size(src) + groups·width).
func (Native) ScatterAdd(index []int, src *ndarray.Array, groups int) (*ndarray.Array, error) {
	width, err := checkScatter(index, src, groups)
	if err != nil {
		return nil, opErrorf(NameNative, "ScatterAdd", err)
	}
	in := src.Data()
	out := make([]float64, groups*width)
	for n, g := range index {
		for i := 0; i < width; i++ {
			out[g*width+i] += in[n*width+i]
		}
	}

	return ndarray.FromSliceAs(src.DType(), out, scatterShape(src.Shape(), groups)...)
}

// ToHost implements Backend.
func (Native) ToHost(a *ndarray.Array) (float64, error) { return toHost(NameNative, a) }
