// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongraph/ndarray"
)

func TestZerosAndFromSlice(t *testing.T) {
	t.Parallel()

	z, err := ndarray.Zeros(ndarray.Int64, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, z.Shape())
	assert.Equal(t, 6, z.Size())
	assert.Equal(t, ndarray.Int64, z.DType())

	empty, err := ndarray.Zeros(ndarray.Float64, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
	d, err := empty.Dim(-1)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	_, err = ndarray.Zeros(ndarray.Float64, -1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = ndarray.Zeros(ndarray.DType(9), 1)
	require.ErrorIs(t, err, ndarray.ErrDType)

	_, err = ndarray.FromSlice([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	a, err := ndarray.FromSliceAs(ndarray.Int64, []float64{1.9, -1.9}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1}, a.Data(), "Int64 truncates toward zero")
}

func TestAtSetFreeze(t *testing.T) {
	t.Parallel()
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
	_, err = a.At(2, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.At(0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	require.NoError(t, a.Set(9, 0, 1))
	v, _ = a.At(0, 1)
	assert.Equal(t, 9.0, v)

	a.Freeze()
	assert.True(t, a.Frozen())
	require.ErrorIs(t, a.Set(0, 0, 0), ndarray.ErrReadOnly)

	// Data hands out a copy
	buf := a.Data()
	buf[0] = 100
	v, _ = a.At(0, 0)
	assert.Equal(t, 1.0, v)

	c := a.Clone()
	assert.False(t, c.Frozen())
	require.NoError(t, c.Set(7, 0, 0))
}

func TestItemAndInts(t *testing.T) {
	t.Parallel()
	s := ndarray.Scalar(3.5)
	assert.Equal(t, 0, s.NDim())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	a, err := ndarray.FromInts([]int64{4, 5}, 2)
	require.NoError(t, err)
	_, err = a.Item()
	require.ErrorIs(t, err, ndarray.ErrNotScalar)
	ints, err := a.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, ints)

	f, err := a.AsType(ndarray.Float64)
	require.NoError(t, err)
	_, err = f.Ints()
	require.ErrorIs(t, err, ndarray.ErrDType)
	assert.Equal(t, "int64[2]{4, 5}", a.String())
}

func TestReshape(t *testing.T) {
	t.Parallel()
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 6)
	require.NoError(t, err)

	r, err := a.Reshape(2, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, r.Shape())
	assert.Equal(t, a.Data(), r.Data())

	_, err = a.Reshape(4, -1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = a.Reshape(-1, -1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = a.Reshape(5)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestAxisPermutations(t *testing.T) {
	t.Parallel()
	// shape (2, 3, 2)
	a, err := ndarray.FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 2, 3, 2)
	require.NoError(t, err)

	tr, err := a.Transpose()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, tr.Shape())
	v, _ := tr.At(1, 2, 0)
	w, _ := a.At(0, 2, 1)
	assert.Equal(t, w, v)

	sw, err := a.SwapAxes(0, -1)
	require.NoError(t, err)
	assert.Equal(t, tr.Data(), sw.Data(), "3-d swap of outer axes equals full reversal")

	mv, err := a.MoveAxis(0, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2}, mv.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				want, _ := a.At(i, j, k)
				got, _ := mv.At(j, k, i)
				assert.Equal(t, want, got)
			}
		}
	}

	back, err := mv.MoveAxis(-1, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())

	_, err = a.SwapAxes(0, 3)
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = a.Transpose(0, 0, 1)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestTranspose_MatrixAndEdgeShapes(t *testing.T) {
	t.Parallel()
	m, err := ndarray.FromSliceAs(ndarray.Int64, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, tr.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.Equal(t, ndarray.Int64, tr.DType())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data(), "source unchanged")

	same, err := m.Transpose(0, 1)
	require.NoError(t, err)
	assert.Equal(t, m.Data(), same.Data())

	empty, err := ndarray.Zeros(ndarray.Float64, 0, 4)
	require.NoError(t, err)
	et, err := empty.Transpose()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0}, et.Shape())

	vec, err := ndarray.FromSlice([]float64{7, 8}, 2)
	require.NoError(t, err)
	vt, err := vec.Transpose()
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, vt.Data())
}

func TestNormalizeAxis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		axis, ndim, want int
		wantErr          bool
	}{
		{axis: 0, ndim: 2, want: 0},
		{axis: -1, ndim: 2, want: 1},
		{axis: -2, ndim: 2, want: 0},
		{axis: 2, ndim: 2, wantErr: true},
		{axis: -3, ndim: 2, wantErr: true},
		{axis: 0, ndim: 0, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ndarray.NormalizeAxis(tc.axis, tc.ndim)
		if tc.wantErr {
			require.ErrorIs(t, err, ndarray.ErrAxis)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
