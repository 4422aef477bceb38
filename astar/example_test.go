// Package astar_test shows how to run the best-first solver on explicit graphs.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/core"
)

// ExampleSolve finds the cheapest route across a small weighted graph.
// The direct A–D edge costs more than the detour through B and C.
func ExampleSolve() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("A", "D", 7)
	_ = g.MarkGoal("D")

	res, err := astar.Solve([]core.Vertex{g.MustVertex("A")})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Cost, res.Route)
	// Output: true 4 [A B C D]
}

// ExampleSolve_unreachable reports Found == false without an error.
func ExampleSolve_unreachable() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("Z")
	_ = g.MarkGoal("Z")

	res, err := astar.Solve([]core.Vertex{g.MustVertex("A")})
	fmt.Println(res.Found, res.Route == nil, err)
	// Output: false true <nil>
}

// ExampleSolveFunc searches the same graph backwards, from the goal to "A".
func ExampleSolveFunc() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 3)

	res, _ := astar.SolveFunc(
		[]core.Vertex{g.MustVertex("C")},
		core.Vertex.Predecessors,
		func(v core.Vertex) bool { return v.ID == "A" },
		func(core.Vertex) int64 { return 0 },
	)
	fmt.Println(res.Cost, res.Route)
	// Output: 5 [C B A]
}
