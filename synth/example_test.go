// SPDX-License-Identifier: MIT

package synth_test

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/synth"
)

// ExampleBuild generates a 2×3 grid of regions and prints its layout.
func ExampleBuild() {
	g, err := synth.Build(
		[]core.GraphOption{core.WithWeighted()},
		[]synth.Option{synth.WithDays(10), synth.WithConstantWeight(2)},
		synth.Regions(2, 3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	state, _ := g.VertexAttr("02003", synth.CoarseAttr)
	fmt.Println(g.VerticesInOrder())
	fmt.Println(g.EdgeCount(), state)

	// Output:
	// [01001 01002 01003 02001 02002 02003]
	// 7 2
}
