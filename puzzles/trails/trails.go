// Package trails scores hiking trails on a topographic map. A trail starts at
// height 0, climbs exactly 1 per orthogonal step and ends at height 9.
//
// A trailhead's score is the number of 9-cells it can reach (all-distances
// reachability); its rating is the number of distinct trails from it, counted
// by walking the reached cells in distance order.
package trails

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/state"
)

// ErrBadHeight indicates a cell that is neither a digit nor '.'.
var ErrBadHeight = errors.New("trails: invalid height")

// Map is a parsed topographic map. '.' cells are impassable.
type Map struct {
	Grid *gridgraph.Grid
}

// Parse reads the map and validates every cell.
func Parse(input string) (*Map, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("trails: %w", err)
	}
	for _, p := range g.Positions() {
		if r := g.At(p); r != '.' && (r < '0' || r > '9') {
			return nil, fmt.Errorf("%w: %q at %v", ErrBadHeight, r, p)
		}
	}
	return &Map{Grid: g}, nil
}

func (m *Map) height(p gridgraph.Position) int {
	r := m.Grid.At(p)
	if r < '0' || r > '9' {
		return -1
	}
	return int(r - '0')
}

// climb steps to orthogonal neighbors exactly one higher.
func (m *Map) climb(p gridgraph.Position) []state.Edge[gridgraph.Position] {
	h := m.height(p)
	var out []state.Edge[gridgraph.Position]
	for _, d := range gridgraph.Cardinals {
		if q := p.Step(d); m.height(q) == h+1 {
			out = append(out, state.Edge[gridgraph.Position]{Cost: 1, To: q})
		}
	}
	return out
}

// Trailheads returns every height-0 cell in row-major order.
func (m *Map) Trailheads() []gridgraph.Position {
	return m.Grid.FindAll('0')
}

// Score counts the 9-cells reachable from head.
func (m *Map) Score(head gridgraph.Position) int {
	// Unit costs only, so the error is always nil.
	dist, _, _ := dijkstra.DistancesFunc([]gridgraph.Position{head}, m.climb)
	return lo.CountBy(lo.Keys(dist), func(p gridgraph.Position) bool { return m.height(p) == 9 })
}

// Rating counts the distinct trails from head to any 9-cell.
func (m *Map) Rating(head gridgraph.Position) int {
	// Unit costs only, so the error is always nil.
	dist, _, _ := dijkstra.DistancesFunc([]gridgraph.Position{head}, m.climb)

	// Every edge climbs by one, so distance order is a topological order.
	order := lo.Keys(dist)
	sort.Slice(order, func(i, j int) bool { return dist[order[i]] < dist[order[j]] })

	ways := map[gridgraph.Position]int{head: 1}
	total := 0
	for _, p := range order {
		if m.height(p) == 9 {
			total += ways[p]
			continue
		}
		for _, e := range m.climb(p) {
			ways[e.To] += ways[p]
		}
	}
	return total
}

// Solver plugs the trail map into the puzzle registry.
type Solver struct{}

// Name implements puzzle.Solver.
func (Solver) Name() string { return "trails" }

// Solve implements puzzle.Solver.
func (Solver) Solve(input string) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	heads := m.Trailheads()
	return puzzle.Answer{
		Part1: strconv.Itoa(lo.SumBy(heads, m.Score)),
		Part2: strconv.Itoa(lo.SumBy(heads, m.Rating)),
	}, nil
}
