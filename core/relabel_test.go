// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongraph/core"
)

// newCountyGraph builds three regions loaded out of label order.
func newCountyGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.SetAttr("adm1_key", "adm1"))
	for i, id := range []string{"48201", "06037", "17031"} {
		require.NoError(t, g.AddVertexWithAttrs(id, map[string]interface{}{"adm1": i}))
	}
	_, err := g.AddEdge("48201", "17031", 2.5)
	require.NoError(t, err)
	_, err = g.AddEdge("06037", "48201", 1)
	require.NoError(t, err)

	return g
}

func TestRelabel_NilGraph(t *testing.T) {
	t.Parallel()
	_, err := core.Relabel(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestRelabel_Orders(t *testing.T) {
	t.Parallel()
	g := newCountyGraph(t)

	tests := []struct {
		name  string
		order core.LabelOrder
		want  []string
	}{
		{name: "Insertion", order: core.OrderInsertion, want: []string{"48201", "06037", "17031"}},
		{name: "Sorted", order: core.OrderSorted, want: []string{"06037", "17031", "48201"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ix, err := core.Relabel(g, core.WithOrder(tc.order))
			require.NoError(t, err)
			require.Equal(t, len(tc.want), ix.Len())
			assert.Equal(t, tc.want, ix.Labels())
			for i, label := range tc.want {
				got, ok := ix.Index(label)
				require.True(t, ok)
				assert.Equal(t, i, got)
				l, ok := ix.Label(i)
				require.True(t, ok)
				assert.Equal(t, label, l)
			}
		})
	}
}

func TestRelabel_AttributesAndEdgesFollowIndex(t *testing.T) {
	t.Parallel()
	ix, err := core.Relabel(newCountyGraph(t), core.WithOrder(core.OrderSorted))
	require.NoError(t, err)

	// sorted: 06037→0 (adm1 1), 17031→1 (adm1 2), 48201→2 (adm1 0)
	for i, want := range []int{1, 2, 0} {
		v, ok := ix.NodeAttr(i, "adm1")
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := ix.NodeAttr(3, "adm1")
	assert.False(t, ok)

	assert.Equal(t, []core.IndexedEdge{
		{From: 2, To: 1, Weight: 2.5},
		{From: 0, To: 2, Weight: 1},
	}, ix.Edges())

	key, ok := ix.GraphAttr("adm1_key")
	require.True(t, ok)
	assert.Equal(t, "adm1", key)

	rg := ix.Graph()
	assert.Equal(t, []string{"0", "1", "2"}, rg.VerticesInOrder())
	assert.True(t, rg.HasEdge("2", "1"))
	assert.True(t, rg.HasEdge("1", "2"), "undirected edges are mirrored in the relabeled graph")
	v, ok := rg.VertexAttr(strconv.Itoa(2), "adm1")
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestRelabel_SnapshotIsIsolated(t *testing.T) {
	t.Parallel()
	g := newCountyGraph(t)
	ix, err := core.Relabel(g)
	require.NoError(t, err)

	require.NoError(t, g.SetVertexAttr("48201", "adm1", 99))
	require.NoError(t, g.AddVertex("99999"))

	v, _ := ix.NodeAttr(0, "adm1")
	assert.Equal(t, 0, v)
	assert.Equal(t, 3, ix.Len())
}

func TestRelabel_UnweightedUsesUnitWeights(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	ix, err := core.Relabel(g)
	require.NoError(t, err)
	assert.False(t, ix.Weighted())
	assert.Equal(t, []core.IndexedEdge{{From: 0, To: 1, Weight: 1}}, ix.Edges())
}

func TestRelabel_CopiesEdgePolicies(t *testing.T) {
	t.Parallel()
	g := core.NewMixedGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge("a", "a", 0.5)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 2)
	require.NoError(t, err)

	ix, err := core.Relabel(g)
	require.NoError(t, err)
	rg := ix.Graph()
	assert.True(t, rg.Looped())
	assert.True(t, rg.Multigraph())
	assert.True(t, rg.MixedEdges())
	assert.True(t, rg.Weighted())
	assert.Equal(t, []core.IndexedEdge{
		{From: 0, To: 0, Weight: 0.5},
		{From: 0, To: 1, Weight: 1, Directed: true},
		{From: 0, To: 1, Weight: 2},
	}, ix.Edges())
}
