// SPDX-License-Identifier: MIT

package backend

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regiongraph/ndarray"
)

// Gonum implements Backend on gonum's mat and floats kernels.
// Arrays of rank > 2 are processed as a sequence of 2-D blocks.
//
// AI-Hints:
//   - mat.NewDense panics on zero-length dimensions; every kernel checks
//     for empty operands first and falls back to an empty result.
type Gonum struct{}

var _ Backend = Gonum{}

// Name implements Backend.
func (Gonum) Name() string { return NameGonum }

// VStack implements Backend.
func (Gonum) VStack(rows [][]float64) (*ndarray.Array, error) {
	width, err := checkRows(rows)
	if err != nil {
		return nil, opErrorf(NameGonum, "VStack", err)
	}
	if width == 0 {
		return ndarray.Zeros(ndarray.Float64, len(rows), 0)
	}
	d := mat.NewDense(len(rows), width, nil)
	for i, r := range rows {
		d.SetRow(i, r)
	}

	return ndarray.FromSlice(d.RawMatrix().Data, len(rows), width)
}

// Transpose implements Backend.
// 2-D arrays go through mat.Dense.T; other ranks use the generic permutation.
func (Gonum) Transpose(a *ndarray.Array) (*ndarray.Array, error) {
	shape := a.Shape()
	if len(shape) != 2 || a.Size() == 0 {
		out, err := a.Transpose()
		if err != nil {
			return nil, opErrorf(NameGonum, "Transpose", err)
		}

		return out, nil
	}
	t := mat.DenseCopyOf(mat.NewDense(shape[0], shape[1], a.Data()).T())

	return ndarray.FromSliceAs(a.DType(), t.RawMatrix().Data, shape[1], shape[0])
}

// Diff implements Backend.
//
// Implementation:
//   - Each outer block is an n×inner row-major matrix; output row k is
//     floats.SubTo(row k+1, row k).
func (Gonum) Diff(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	shape := a.Shape()
	ax, err := ndarray.NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, opErrorf(NameGonum, "Diff", err)
	}
	outer, n, inner := layout(shape, ax)
	src := a.Data()
	outShape := shrinkAxis(shape, ax)
	m := outShape[ax]
	out := make([]float64, outer*m*inner)
	for o := 0; o < outer; o++ {
		for k := 0; k < m; k++ {
			lo := (o*n + k) * inner
			floats.SubTo(out[(o*m+k)*inner:(o*m+k+1)*inner], src[lo+inner:lo+2*inner], src[lo:lo+inner])
		}
	}

	return ndarray.FromSliceAs(a.DType(), out, outShape...)
}

// Clip implements Backend.
func (Gonum) Clip(a *ndarray.Array, b Bounds) (*ndarray.Array, error) {
	if err := b.Validate(); err != nil {
		return nil, opErrorf(NameGonum, "Clip", err)
	}
	buf := a.Data()
	if b.Active() && len(buf) > 0 {
		d := mat.NewDense(1, len(buf), buf)
		d.Apply(func(_, _ int, v float64) float64 { return b.apply(v) }, d)
	}

	return ndarray.FromSliceAs(a.DType(), buf, a.Shape()...)
}

// ConvolveValid implements Backend.
func (Gonum) ConvolveValid(x, kernel []float64) ([]float64, error) {
	m := len(kernel)
	if m == 0 {
		return nil, opErrorf(NameGonum, "ConvolveValid", ErrBadKernel)
	}
	n := len(x) - m + 1
	if n <= 0 {
		return []float64{}, nil
	}
	flipped := make([]float64, m)
	for j, v := range kernel {
		flipped[m-1-j] = v
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = floats.Dot(x[i:i+m], flipped)
	}

	return out, nil
}

// SumAxis implements Backend.
//
// Implementation:
//   - Each outer block B (n×inner) reduces to Bᵀ·1 via mat.VecDense.MulVec.
func (Gonum) SumAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	shape := a.Shape()
	ax, err := ndarray.NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, opErrorf(NameGonum, "SumAxis", err)
	}
	outer, n, inner := layout(shape, ax)
	out := make([]float64, outer*inner)
	if n > 0 && inner > 0 {
		src := a.Data()
		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		onesVec := mat.NewVecDense(n, ones)
		block := n * inner
		for o := 0; o < outer; o++ {
			b := mat.NewDense(n, inner, src[o*block:(o+1)*block])
			var v mat.VecDense
			v.MulVec(b.T(), onesVec)
			for i := 0; i < inner; i++ {
				out[o*inner+i] = v.AtVec(i)
			}
		}
	}

	return ndarray.FromSliceAs(a.DType(), out, dropAxis(shape, ax)...)
}

// Max implements Backend.
// Errors: ErrEmptyInput.
func (Gonum) Max(a *ndarray.Array) (*ndarray.Array, error) {
	src := a.Data()
	if len(src) == 0 {
		return nil, opErrorf(NameGonum, "Max", ErrEmptyInput)
	}

	return ndarray.FromSliceAs(a.DType(), []float64{floats.Max(src)})
}

// ScatterAdd implements Backend.
func (Gonum) ScatterAdd(index []int, src *ndarray.Array, groups int) (*ndarray.Array, error) {
	width, err := checkScatter(index, src, groups)
	if err != nil {
		return nil, opErrorf(NameGonum, "ScatterAdd", err)
	}
	in := src.Data()
	out := make([]float64, groups*width)
	for n, g := range index {
		floats.Add(out[g*width:(g+1)*width], in[n*width:(n+1)*width])
	}

	return ndarray.FromSliceAs(src.DType(), out, scatterShape(src.Shape(), groups)...)
}

// ToHost implements Backend.
func (Gonum) ToHost(a *ndarray.Array) (float64, error) { return toHost(NameGonum, a) }
