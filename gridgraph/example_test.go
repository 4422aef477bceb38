// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Regions lists equal-symbol regions with their fence measures.
// Complexity: O(W·H·log(W·H)), Memory: O(W·H)
func ExampleGrid_Regions() {
	g, _ := gridgraph.Parse("AAAA\nBBCD\nBBCC\nEEEC", gridgraph.DefaultGridOptions())
	for _, r := range g.Regions() {
		fmt.Printf("%c area=%d perimeter=%d sides=%d\n", r.Symbol, r.Area(), r.Perimeter(), r.Sides())
	}
	// Output:
	// A area=4 perimeter=10 sides=4
	// B area=4 perimeter=8 sides=4
	// C area=4 perimeter=10 sides=8
	// D area=1 perimeter=4 sides=4
	// E area=3 perimeter=8 sides=4
}

////////////////////////////////////////////////////////////////////////////////
// Example: Breach
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Breach finds the thinnest point of a wall.
func ExampleGrid_Breach() {
	g, _ := gridgraph.Parse(
		"S.#..\n"+
			"..##.\n"+
			"###.E", gridgraph.DefaultGridOptions())
	s, _ := g.Find('S')
	e, _ := g.Find('E')

	cost, path, err := g.Breach(s, e, func(r rune) bool { return r != '#' })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cost, path[0], path[len(path)-1])
	// Output: 1 (0,0) (4,2)
}
