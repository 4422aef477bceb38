// Package gardens prices fencing for garden plots. Each maximal
// orthogonally connected region of one plant symbol needs a fence whose
// price is its area times its perimeter, or with the bulk discount its area
// times its number of straight sides.
package gardens

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/puzzle"
)

// Price sums area times perimeter over every region.
func Price(g *gridgraph.Grid) int {
	return lo.SumBy(g.Regions(), func(r gridgraph.Region) int { return r.Area() * r.Perimeter() })
}

// BulkPrice sums area times side count over every region.
func BulkPrice(g *gridgraph.Grid) int {
	return lo.SumBy(g.Regions(), func(r gridgraph.Region) int { return r.Area() * r.Sides() })
}

// Solver plugs garden pricing into the puzzle registry.
type Solver struct{}

// Name implements puzzle.Solver.
func (Solver) Name() string { return "gardens" }

// Solve implements puzzle.Solver.
func (Solver) Solve(input string) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("gardens: %w", err)
	}
	return puzzle.Answer{
		Part1: strconv.Itoa(Price(g)),
		Part2: strconv.Itoa(BulkPrice(g)),
	}, nil
}
