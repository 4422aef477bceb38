package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/astar"
)

// BenchmarkSolve_OpenGrid crosses an empty 100×100 grid corner to corner.
func BenchmarkSolve_OpenGrid(b *testing.B) {
	m := &maze{w: 100, h: 100, walls: map[[2]int]bool{}, goal: [2]int{99, 99}}
	start := []cell{{0, 0, m}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Solve(start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Blind is the same grid with the heuristic disabled.
func BenchmarkSolve_Blind(b *testing.B) {
	m := &maze{w: 100, h: 100, walls: map[[2]int]bool{}, goal: [2]int{99, 99}, noH: true}
	start := []cell{{0, 0, m}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Solve(start); err != nil {
			b.Fatal(err)
		}
	}
}
