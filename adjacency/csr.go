// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// CSR stores the connectivity as a compressed sparse row matrix
// (github.com/james-bowman/sparse), which also satisfies gonum's mat.Matrix.
// m is nil for a 0×0 matrix.
type CSR struct {
	n int
	m *sparse.CSR
}

var _ Matrix = (*CSR)(nil)

func newCSR(n int, m *sparse.CSR) *CSR { return &CSR{n: n, m: m} }

// each visits the stored entries; explicit zeros are skipped.
func (c *CSR) each(fn func(i, j int, v float64)) {
	if c.m == nil {
		return
	}
	c.m.DoNonZero(func(i, j int, v float64) {
		if v != 0 {
			fn(i, j, v)
		}
	})
}

// Dim implements Matrix.
func (c *CSR) Dim() int { return c.n }

// Sparse implements Matrix.
func (c *CSR) Sparse() bool { return true }

// Raw returns the underlying sparse matrix. It is shared; treat it as read-only.
func (c *CSR) Raw() mat.Matrix {
	if c.m == nil {
		return &mat.Dense{}
	}

	return c.m
}

// At implements Matrix.
// Complexity: O(deg(i)).
func (c *CSR) At(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= c.n || j >= c.n {
		return 0, adjErrorf("CSR.At", fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, c.n, c.n, ErrOutOfRange))
	}

	return c.m.At(i, j), nil
}

// MulVec implements Matrix.
// Complexity: O(N + NNZ).
func (c *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != c.n {
		return nil, adjErrorf("CSR.MulVec", fmt.Errorf("len(x)=%d, dim=%d: %w", len(x), c.n, ErrDimensionMismatch))
	}
	y := make([]float64, c.n)
	c.each(func(i, j int, v float64) { y[i] += v * x[j] })

	return y, nil
}

// RowSums implements Matrix.
func (c *CSR) RowSums() []float64 {
	out := make([]float64, c.n)
	c.each(func(i, _ int, v float64) { out[i] += v })

	return out
}

// ColSums implements Matrix.
func (c *CSR) ColSums() []float64 {
	out := make([]float64, c.n)
	c.each(func(_, j int, v float64) { out[j] += v })

	return out
}

// Diagonal implements Matrix.
func (c *CSR) Diagonal() []float64 {
	out := make([]float64, c.n)
	for i := range out {
		out[i] = c.m.At(i, i)
	}

	return out
}

// NNZ implements Matrix.
func (c *CSR) NNZ() int {
	nnz := 0
	c.each(func(int, int, float64) { nnz++ })

	return nnz
}

// Normalize implements Matrix. The sparsity pattern is unchanged.
func (c *CSR) Normalize(axis Axis) (Matrix, error) {
	if axis != Rows && axis != Cols {
		return nil, adjErrorf("CSR.Normalize", fmt.Errorf("%v: %w", axis, ErrBadAxis))
	}
	if c.n == 0 {
		return &CSR{}, nil
	}
	slot := func(i, j int) int {
		if axis == Rows {
			return i
		}
		return j
	}
	norms := make([]float64, c.n)
	c.each(func(i, j int, v float64) { norms[slot(i, j)] += math.Abs(v) })
	scale := l1Scales(norms)

	out := sparse.NewDOK(c.n, c.n)
	c.each(func(i, j int, v float64) { out.Set(i, j, v*scale[slot(i, j)]) })

	return newCSR(c.n, out.ToCSR()), nil
}

// Dense implements Matrix.
func (c *CSR) Dense() *mat.Dense {
	if c.n == 0 {
		return &mat.Dense{}
	}

	return c.m.ToDense()
}
