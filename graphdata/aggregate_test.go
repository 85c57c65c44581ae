// SPDX-License-Identifier: MIT

package graphdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/graphdata"
	"github.com/katalvlaran/regiongraph/ndarray"
)

func TestAggregate_TwoLevelHierarchy(t *testing.T) {
	t.Parallel()
	groups := []int{0, 0, 1, 1}
	for _, b := range allBackends(t) {
		x := array(t, []float64{10, 20, 30, 40}, 4)

		y, err := graphdata.Aggregate(b, x, groups, 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{30, 70}, y.Data())

		// empty third group is a zero row, not an omission
		y, err = graphdata.Aggregate(b, x, groups, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, y.Shape())
		assert.Equal(t, []float64{30, 70, 0}, y.Data())
	}
}

func TestAggregate_TrailingAxesAndDType(t *testing.T) {
	t.Parallel()
	// [N=3, A=2, T=2]
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	x, err := ndarray.FromSliceAs(ndarray.Int64, data, 3, 2, 2)
	require.NoError(t, err)

	y, err := graphdata.Aggregate(nil, x, []int{1, 1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, y.Shape())
	assert.Equal(t, ndarray.Int64, y.DType())
	assert.Equal(t, []float64{9, 10, 11, 12, 6, 8, 10, 12}, y.Data())
	assert.Equal(t, sum(x.Data()), sum(y.Data()), "mass is conserved")
}

func TestAggregate_Errors(t *testing.T) {
	t.Parallel()
	x := array(t, []float64{1, 2}, 2)
	_, err := graphdata.Aggregate(nil, x, []int{0}, 1)
	require.ErrorIs(t, err, graphdata.ErrGroupMismatch)
	_, err = graphdata.Aggregate(nil, ndarray.Scalar(1), nil, 1)
	require.ErrorIs(t, err, graphdata.ErrGroupMismatch)
	_, err = graphdata.Aggregate(nil, x, []int{0, 5}, 2)
	require.ErrorIs(t, err, backend.ErrIndex)
}
