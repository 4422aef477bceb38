package optimal_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/optimal"
)

// ExampleStates lists every vertex on some cheapest A→D route. B and C tie;
// the direct edge is more expensive.
func ExampleStates() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("B", "D", 1)
	_ = g.AddEdge("C", "D", 2)
	_ = g.AddEdge("A", "D", 4)

	set, err := optimal.States(
		[]core.Vertex{g.MustVertex("A")},
		[]core.Vertex{g.MustVertex("D")},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	members := set.Sorted(func(a, b core.Vertex) bool { return a.ID < b.ID })
	fmt.Println(set.Cost, members)
	// Output: 3 [A B C D]
}
