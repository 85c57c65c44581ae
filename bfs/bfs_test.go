// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongraph/bfs"
	"github.com/katalvlaran/regiongraph/core"
)

func indexed(t *testing.T, g *core.Graph) *core.Indexed {
	t.Helper()
	ix, err := core.Relabel(g)
	require.NoError(t, err)

	return ix
}

// path A–B–C–D plus isolated E, insertion order A..E
func pathGraph(t *testing.T, opts ...core.GraphOption) *core.Indexed {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return indexed(t, g)
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	ix := pathGraph(t)
	_, err = bfs.BFS(ix, 5)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS(ix, -1)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS(ix, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndPaths(t *testing.T) {
	t.Parallel()
	res, err := bfs.BFS(pathGraph(t), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 3}, res.Order)
	assert.Equal(t, []int{1, 0, 1, 2, -1}, res.Depth)
	assert.False(t, res.Reached(4))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)
	_, err = res.PathTo(4)
	require.Error(t, err)
}

func TestBFS_DirectedAndWeak(t *testing.T) {
	t.Parallel()
	ix := pathGraph(t, core.WithDirected(true))

	res, err := bfs.BFS(ix, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Order, "forward only")

	res, err = bfs.BFS(ix, 2, bfs.WithWeak())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 0}, res.Order)
}

func TestBFS_MaxDepthAndHooks(t *testing.T) {
	t.Parallel()
	ix := pathGraph(t)

	res, err := bfs.BFS(ix, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(ix, 0, bfs.WithOnVisit(func(node, _ int) error {
		if node == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(ix, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	t.Parallel()
	labels, sizes, err := bfs.Components(pathGraph(t, core.WithDirected(true)))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, labels, "direction is ignored")
	assert.Equal(t, []int{4, 1}, sizes)

	labels, sizes, err = bfs.Components(indexed(t, core.NewGraph()))
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Empty(t, sizes)

	_, _, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
