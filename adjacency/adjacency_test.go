// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regiongraph/adjacency"
	"github.com/katalvlaran/regiongraph/core"
)

// regions: A-B (2), B-C (1), A-B again (3, parallel), C self-loop (4), D isolated.
func newRegionIndex(t *testing.T, opts ...core.GraphOption) *core.Indexed {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()}, opts...)...)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 2}, {"B", "C", 1}, {"A", "B", 3}, {"C", "C", 4}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	ix, err := core.Relabel(g)
	require.NoError(t, err)

	return ix
}

func dense(t *testing.T, m adjacency.Matrix) [][]float64 {
	t.Helper()
	n := m.Dim()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestBuild_UndirectedStorageModes(t *testing.T) {
	t.Parallel()
	want := [][]float64{
		{0, 5, 0, 0},
		{5, 0, 1, 0},
		{0, 1, 4, 0},
		{0, 0, 0, 0},
	}
	for _, sparse := range []bool{true, false} {
		m, err := adjacency.Build(newRegionIndex(t), adjacency.WithSparse(sparse))
		require.NoError(t, err)
		assert.Equal(t, sparse, m.Sparse())
		assert.Equal(t, 4, m.Dim())
		assert.Equal(t, want, dense(t, m))
		assert.Equal(t, 5, m.NNZ())
		assert.Equal(t, []float64{5, 6, 5, 0}, m.RowSums())
		assert.Equal(t, []float64{5, 6, 5, 0}, m.ColSums())
		assert.Equal(t, []float64{0, 0, 4, 0}, m.Diagonal())

		y, err := m.MulVec([]float64{1, 1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 6, 5, 0}, y)
		_, err = m.MulVec([]float64{1})
		require.ErrorIs(t, err, adjacency.ErrDimensionMismatch)
		_, err = m.At(4, 0)
		require.ErrorIs(t, err, adjacency.ErrOutOfRange)

		assert.True(t, mat.Equal(mat.NewDense(4, 4, []float64{
			0, 5, 0, 0,
			5, 0, 1, 0,
			0, 1, 4, 0,
			0, 0, 0, 0,
		}), m.Dense()))
	}
}

func TestBuild_DirectedAndOptions(t *testing.T) {
	t.Parallel()
	ix := newRegionIndex(t, core.WithDirected(true))

	m, err := adjacency.Build(ix)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 5, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
	}, dense(t, m))

	unit, err := adjacency.Build(ix, adjacency.WithUnitWeights(), adjacency.WithSparse(false))
	require.NoError(t, err)
	v, _ := unit.At(0, 1)
	assert.Equal(t, 2.0, v, "parallel unit edges still accumulate")

	sym, err := adjacency.Build(ix, adjacency.WithSymmetric(true))
	require.NoError(t, err)
	v, _ = sym.At(1, 0)
	assert.Equal(t, 0.0, v, "directed edges are never mirrored")

	und := newRegionIndex(t)
	oneWay, err := adjacency.Build(und, adjacency.WithSymmetric(false))
	require.NoError(t, err)
	v, _ = oneWay.At(1, 0)
	assert.Equal(t, 0.0, v)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()
	_, err := adjacency.Build(nil)
	require.ErrorIs(t, err, adjacency.ErrNilGraph)

	ix, err := core.Relabel(core.NewGraph())
	require.NoError(t, err)
	m, err := adjacency.Build(ix, adjacency.WithSparse(false))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Dim())
	assert.True(t, m.Dense().IsEmpty())
	y, err := m.MulVec(nil)
	require.NoError(t, err)
	assert.Empty(t, y)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	for _, sparse := range []bool{true, false} {
		m, err := adjacency.Build(newRegionIndex(t), adjacency.WithSparse(sparse))
		require.NoError(t, err)

		rows, err := m.Normalize(adjacency.Rows)
		require.NoError(t, err)
		assert.Equal(t, sparse, rows.Sparse())
		assert.InDeltaSlice(t, []float64{1, 1, 1, 0}, rows.RowSums(), 1e-12, "isolated row stays zero")
		v, _ := rows.At(1, 2)
		assert.InDelta(t, 1.0/6, v, 1e-12)

		cols, err := m.Normalize(adjacency.Cols)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 1, 1, 0}, cols.ColSums(), 1e-12)
		v, _ = cols.At(2, 1)
		assert.InDelta(t, 1.0/6, v, 1e-12)

		// source untouched
		v, _ = m.At(1, 2)
		assert.Equal(t, 1.0, v)

		_, err = m.Normalize(adjacency.Axis(7))
		require.ErrorIs(t, err, adjacency.ErrBadAxis)
	}
}

func TestBuild_CancelledWeightsAndRaw(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", -2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1.5)
	require.NoError(t, err)
	ix, err := core.Relabel(g)
	require.NoError(t, err)

	m, err := adjacency.Build(ix)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ(), "A-B cancels out")
	assert.Equal(t, []float64{0, 1.5, 1.5}, m.RowSums())

	csr, ok := m.(*adjacency.CSR)
	require.True(t, ok)
	assert.True(t, mat.Equal(csr.Raw(), m.Dense()))
	r, c := csr.Raw().Dims()
	assert.Equal(t, [2]int{3, 3}, [2]int{r, c})

	empty, err := core.Relabel(core.NewGraph())
	require.NoError(t, err)
	m, err = adjacency.Build(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())
	assert.True(t, m.Dense().IsEmpty())
	norm, err := m.Normalize(adjacency.Rows)
	require.NoError(t, err)
	assert.Equal(t, 0, norm.Dim())
}
