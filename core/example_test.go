package core_test

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/core"
)

// ExampleRelabel shows how labels map to canonical indices.
func ExampleRelabel() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertexWithAttrs("Travis", map[string]interface{}{"adm1": 48})
	_ = g.AddVertexWithAttrs("Cook", map[string]interface{}{"adm1": 17})
	_, _ = g.AddEdge("Travis", "Cook", 0.3)

	ix, _ := core.Relabel(g)
	for i := 0; i < ix.Len(); i++ {
		label, _ := ix.Label(i)
		adm1, _ := ix.NodeAttr(i, "adm1")
		fmt.Println(i, label, adm1)
	}
	fmt.Println(ix.Edges())

	// Output:
	// 0 Travis 48
	// 1 Cook 17
	// [{0 1 0.3 false}]
}
