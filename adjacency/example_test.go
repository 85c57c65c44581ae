package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/adjacency"
	"github.com/katalvlaran/regiongraph/core"
)

// ExampleBuild couples three regions and spreads a unit of mass from region 0.
func ExampleBuild() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("north", "center", 3)
	_, _ = g.AddEdge("center", "south", 1)

	ix, _ := core.Relabel(g)
	A, _ := adjacency.Build(ix)
	P, _ := A.Normalize(adjacency.Cols)
	y, _ := P.MulVec([]float64{1, 0, 0})

	fmt.Println(A.NNZ(), A.RowSums())
	fmt.Println(y)

	// Output:
	// 4 [3 4 1]
	// [0 1 0]
}
