// Package reindeer scores routes through a maze where a reindeer can step
// forward for 1 point or turn 90° in place for 1000 points.
//
// Part 1 is the lowest score from S (facing East) to E, found with A*.
// Part 2 counts the tiles that lie on any lowest-score route, found by
// joining a forward and a backward all-distances search.
package reindeer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/optimal"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/render"
	"github.com/katalvlaran/lvsearch/state"
)

const (
	stepCost = 1
	turnCost = 1000
)

var (
	// ErrMissingTile indicates an input without an S or E tile.
	ErrMissingTile = errors.New("reindeer: maze needs one S and one E tile")
	// ErrNoRoute indicates that E cannot be reached from S.
	ErrNoRoute = errors.New("reindeer: no route from start to end")
)

// Maze is a parsed puzzle input.
type Maze struct {
	Grid       *gridgraph.Grid
	Start, End gridgraph.Position
}

// Parse reads the maze text.
func Parse(input string) (*Maze, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("reindeer: %w", err)
	}
	s, okS := g.Find('S')
	e, okE := g.Find('E')
	if !okS || !okE {
		return nil, ErrMissingTile
	}
	return &Maze{Grid: g, Start: s, End: e}, nil
}

// Reindeer is a search state: where the reindeer stands and where it faces.
type Reindeer struct {
	Pos    gridgraph.Position
	Facing gridgraph.Direction
	maze   *Maze
}

func (m *Maze) open(p gridgraph.Position) bool {
	r := m.Grid.At(p)
	return r != '#' && r != 0
}

// Successors turns left, turns right, or steps forward onto an open tile.
func (r Reindeer) Successors() []state.Edge[Reindeer] {
	out := []state.Edge[Reindeer]{
		{Cost: turnCost, To: Reindeer{r.Pos, r.Facing.TurnLeft(), r.maze}},
		{Cost: turnCost, To: Reindeer{r.Pos, r.Facing.TurnRight(), r.maze}},
	}
	if next := r.Pos.Step(r.Facing); r.maze.open(next) {
		out = append(out, state.Edge[Reindeer]{Cost: stepCost, To: Reindeer{next, r.Facing, r.maze}})
	}
	return out
}

// Predecessors undoes a turn or steps backward without changing facing.
func (r Reindeer) Predecessors() []state.Edge[Reindeer] {
	out := []state.Edge[Reindeer]{
		{Cost: turnCost, To: Reindeer{r.Pos, r.Facing.TurnLeft(), r.maze}},
		{Cost: turnCost, To: Reindeer{r.Pos, r.Facing.TurnRight(), r.maze}},
	}
	if prev := r.Pos.Step(r.Facing.Reverse()); r.maze.open(prev) && r.maze.open(r.Pos) {
		out = append(out, state.Edge[Reindeer]{Cost: stepCost, To: Reindeer{prev, r.Facing, r.maze}})
	}
	return out
}

// IsEnd reports whether the reindeer stands on E, facing any way.
func (r Reindeer) IsEnd() bool { return r.Pos == r.maze.End }

// Heuristic is the Manhattan distance to E; every step costs at least 1.
func (r Reindeer) Heuristic() int64 { return int64(r.Pos.Manhattan(r.maze.End)) }

func (r Reindeer) String() string { return fmt.Sprintf("%v%c", r.Pos, r.Facing.Rune()) }

// StartState is the reindeer on S facing East.
func (m *Maze) StartState() Reindeer {
	return Reindeer{m.Start, gridgraph.East, m}
}

// EndStates are the four facings on E.
func (m *Maze) EndStates() []Reindeer {
	out := make([]Reindeer, 0, len(gridgraph.Cardinals))
	for _, d := range gridgraph.Cardinals {
		out = append(out, Reindeer{m.End, d, m})
	}
	return out
}

// LowestScore returns the cheapest route score and the route itself.
func (m *Maze) LowestScore() (int64, []Reindeer, error) {
	res, err := astar.Solve([]Reindeer{m.StartState()}, astar.WithCapacity(m.Grid.Width*m.Grid.Height))
	if err != nil {
		return 0, nil, err
	}
	log.Debug().Str("puzzle", "reindeer").Int("expanded", res.Expanded).Msg("lowest-score")
	if !res.Found {
		return 0, nil, ErrNoRoute
	}
	return res.Cost, res.Route, nil
}

// BestTiles returns the tiles on any lowest-score route.
func (m *Maze) BestTiles() (map[gridgraph.Position]struct{}, error) {
	set, err := optimal.States([]Reindeer{m.StartState()}, m.EndStates(),
		optimal.WithCapacity(4*m.Grid.Width*m.Grid.Height))
	if err != nil {
		return nil, err
	}
	if !set.Found {
		return nil, ErrNoRoute
	}
	return optimal.Project(set, func(r Reindeer) gridgraph.Position { return r.Pos }), nil
}

// Solver plugs the maze into the puzzle registry.
type Solver struct{}

// Name implements puzzle.Solver.
func (Solver) Name() string { return "reindeer" }

// Solve implements puzzle.Solver.
func (Solver) Solve(input string) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	score, _, err := m.LowestScore()
	if err != nil {
		return puzzle.Answer{}, err
	}
	tiles, err := m.BestTiles()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: strconv.FormatInt(score, 10),
		Part2: strconv.Itoa(len(tiles)),
	}, nil
}

// Visualize draws one lowest-score route with facing arrows over every other
// tile that lies on some lowest-score route, marked 'O'.
func (Solver) Visualize(input string, theme render.Theme) (string, error) {
	m, err := Parse(input)
	if err != nil {
		return "", err
	}
	_, route, err := m.LowestScore()
	if err != nil {
		return "", err
	}
	tiles, err := m.BestTiles()
	if err != nil {
		return "", err
	}
	overlay := render.Cells(tiles, 'O')
	for _, r := range route {
		overlay[r.Pos] = r.Facing.Rune()
	}
	return render.Grid(m.Grid, overlay, theme), nil
}
