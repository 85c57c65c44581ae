package graphdata_test

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/graphdata"
	"github.com/katalvlaran/regiongraph/ndarray"
)

// ExampleNew builds the derived arrays for four counties in two states and
// rolls county populations up to state level.
func ExampleNew() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.SetAttr("adm2_key", "county")
	_ = g.SetAttr("adm1_key", "state")
	counties := []struct {
		id    string
		state int
		pop   []int
	}{
		{"a", 0, []int{4, 6}},
		{"b", 0, []int{10, 10}},
		{"c", 1, []int{15, 15}},
		{"d", 1, []int{20, 20}},
	}
	for i, c := range counties {
		_ = g.AddVertexWithAttrs(c.id, map[string]interface{}{
			"case_hist":  []int{0, 5, 3, 3, 10},
			"death_hist": []int{0, 0, 0, 1, 1},
			"N_age_init": c.pop,
			"county":     i,
			"state":      c.state,
		})
	}
	_, _ = g.AddEdge("a", "b", 1)

	gd, err := graphdata.New(g, graphdata.WithRollingWindow(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	inc, _ := ndarray.FromSlice(gd.IncCaseHist().Data()[:4], 4) // first day of increments
	byState, _ := gd.SumCoarse(gd.Nj())
	fmt.Println(gd.IncCaseHist().Shape(), gd.RollingCases().Shape())
	fmt.Println(inc.Data())
	fmt.Println(byState.Data())

	// Output:
	// [4 4] [2 4]
	// [5 5 5 5]
	// [30 70]
}
