// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense stores the connectivity in a gonum *mat.Dense.
// m is nil for a 0×0 matrix (gonum rejects zero dimensions).
type Dense struct {
	n int
	m *mat.Dense
}

var _ Matrix = (*Dense)(nil)

// Dim implements Matrix.
func (d *Dense) Dim() int { return d.n }

// Sparse implements Matrix.
func (d *Dense) Sparse() bool { return false }

// At implements Matrix.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0, adjErrorf("Dense.At", fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, d.n, d.n, ErrOutOfRange))
	}

	return d.m.At(i, j), nil
}

// MulVec implements Matrix.
func (d *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != d.n {
		return nil, adjErrorf("Dense.MulVec", fmt.Errorf("len(x)=%d, dim=%d: %w", len(x), d.n, ErrDimensionMismatch))
	}
	if d.n == 0 {
		return []float64{}, nil
	}
	var y mat.VecDense
	y.MulVec(d.m, mat.NewVecDense(d.n, append([]float64(nil), x...)))
	out := make([]float64, d.n)
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out, nil
}

// RowSums implements Matrix.
func (d *Dense) RowSums() []float64 {
	out := make([]float64, d.n)
	for i := range out {
		out[i] = floats.Sum(d.m.RawRowView(i))
	}

	return out
}

// ColSums implements Matrix.
func (d *Dense) ColSums() []float64 {
	out := make([]float64, d.n)
	for j := range out {
		out[j] = floats.Sum(mat.Col(nil, j, d.m))
	}

	return out
}

// Diagonal implements Matrix.
func (d *Dense) Diagonal() []float64 {
	out := make([]float64, d.n)
	for i := range out {
		out[i] = d.m.At(i, i)
	}

	return out
}

// NNZ implements Matrix.
func (d *Dense) NNZ() int {
	nnz := 0
	for i := 0; i < d.n; i++ {
		for _, v := range d.m.RawRowView(i) {
			if v != 0 {
				nnz++
			}
		}
	}

	return nnz
}

// Normalize implements Matrix.
//
// Implementation:
//   - Rows: D·A with D = diag(1/‖row‖₁); Cols: A·D with D = diag(1/‖col‖₁).
//   - Zero-norm slots get scale 0 and therefore stay zero.
func (d *Dense) Normalize(axis Axis) (Matrix, error) {
	if axis != Rows && axis != Cols {
		return nil, adjErrorf("Dense.Normalize", fmt.Errorf("%v: %w", axis, ErrBadAxis))
	}
	if d.n == 0 {
		return &Dense{}, nil
	}
	norms := make([]float64, d.n)
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			v := math.Abs(d.m.At(i, j))
			if axis == Rows {
				norms[i] += v
			} else {
				norms[j] += v
			}
		}
	}
	diag := mat.NewDiagDense(d.n, l1Scales(norms))
	out := mat.NewDense(d.n, d.n, nil)
	if axis == Rows {
		out.Mul(diag, d.m)
	} else {
		out.Mul(d.m, diag)
	}

	return &Dense{n: d.n, m: out}, nil
}

// Dense implements Matrix.
func (d *Dense) Dense() *mat.Dense {
	if d.n == 0 {
		return &mat.Dense{}
	}

	return mat.DenseCopyOf(d.m)
}
