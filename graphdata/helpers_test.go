// SPDX-License-Identifier: MIT

package graphdata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/ndarray"
)

// region is one node of the fixture graph.
type region struct {
	id     string
	cases  []float64
	deaths []float64
	pop    []float64
	adm2   int
	adm1   int
}

// fixtureRegions: two coarse regions with two fine regions each.
// Node "48201" carries a data correction in both histories (5 -> 3 cases, 1 -> 0 deaths)
// and one empty age bucket.
var fixtureRegions = []region{
	{id: "48453", cases: []float64{0, 1, 3, 6, 10, 15, 21, 28, 36}, deaths: []float64{0, 0, 1, 1, 2, 2, 2, 3, 3}, pop: []float64{100, 200, 50}, adm2: 453, adm1: 0},
	{id: "48201", cases: []float64{0, 5, 3, 3, 10, 10, 12, 15, 15}, deaths: []float64{0, 1, 1, 0, 1, 1, 1, 1, 2}, pop: []float64{0, 10, 20}, adm2: 201, adm1: 0},
	{id: "06037", cases: []float64{2, 2, 2, 2, 2, 2, 2, 2, 2}, deaths: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0}, pop: []float64{5, 5, 5}, adm2: 37, adm1: 1},
	{id: "06073", cases: []float64{0, 0, 1, 1, 2, 2, 3, 3, 4}, deaths: []float64{0, 0, 0, 0, 0, 1, 1, 1, 1}, pop: []float64{1, 2, 3}, adm2: 73, adm1: 1},
}

// newFixtureGraph builds the fixture; mutate may edit regions before insertion.
func newFixtureGraph(t *testing.T, mutate func(rs []region)) *core.Graph {
	t.Helper()
	rs := make([]region, len(fixtureRegions))
	copy(rs, fixtureRegions)
	if mutate != nil {
		mutate(rs)
	}

	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.SetAttr("adm2_key", "adm2"))
	require.NoError(t, g.SetAttr("adm1_key", "adm1"))
	for _, r := range rs {
		attrs := map[string]interface{}{"adm2": r.adm2, "adm1": r.adm1}
		if r.cases != nil {
			attrs["case_hist"] = r.cases
		}
		if r.deaths != nil {
			attrs["death_hist"] = r.deaths
		}
		if r.pop != nil {
			attrs["N_age_init"] = r.pop
		}
		require.NoError(t, g.AddVertexWithAttrs(r.id, attrs))
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"48453", "48201", 2}, {"06037", "06073", 1}, {"48201", "06037", 0.5}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// allBackends returns one instance of every registered backend.
func allBackends(t *testing.T) []backend.Backend {
	t.Helper()
	var out []backend.Backend
	for _, name := range backend.Names() {
		b, err := backend.New(name)
		require.NoError(t, err)
		out = append(out, b)
	}

	return out
}

func relabel(t *testing.T, g *core.Graph) *core.Indexed {
	t.Helper()
	ix, err := core.Relabel(g)
	require.NoError(t, err)

	return ix
}

func array(t *testing.T, data []float64, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromSlice(data, shape...)
	require.NoError(t, err)

	return a
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
