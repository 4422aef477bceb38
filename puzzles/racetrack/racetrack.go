// Package racetrack counts shortcuts ("cheats") through the walls of a
// single-lane race track.
//
// A cheat leaves the track at one cell, moves up to N cells ignoring walls,
// and rejoins the track. Its length is the Manhattan distance covered. With
// distances from the start and to the end known for every track cell
// (two all-distances searches), a cheat from a to b finishes in
// fromStart[a] + |a-b| + toEnd[b].
package racetrack

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/state"
)

// Puzzle defaults.
const (
	DefaultShortCheat = 2
	DefaultLongCheat  = 20
	DefaultMinSaving  = 100
)

var (
	// ErrMissingTile indicates an input without an S or E tile.
	ErrMissingTile = errors.New("racetrack: track needs one S and one E tile")
	// ErrNoRoute indicates that E cannot be reached from S on the track.
	ErrNoRoute = errors.New("racetrack: end unreachable without cheating")
)

// Track is a parsed puzzle input with both distance maps precomputed.
type Track struct {
	Grid       *gridgraph.Grid
	Start, End gridgraph.Position
	fromStart  dijkstra.DistanceMap[gridgraph.Position]
	toEnd      dijkstra.DistanceMap[gridgraph.Position]
}

// Parse reads the track and measures it from both ends.
func Parse(input string) (*Track, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	s, okS := g.Find('S')
	e, okE := g.Find('E')
	if !okS || !okE {
		return nil, ErrMissingTile
	}
	t := &Track{Grid: g, Start: s, End: e}

	capacity := dijkstra.WithCapacity(g.Width * g.Height)
	if t.fromStart, _, err = dijkstra.DistancesFunc([]gridgraph.Position{s}, t.moves, capacity); err != nil {
		return nil, err
	}
	// The track is undirected, so the moves are their own inverse.
	if t.toEnd, _, err = dijkstra.DistancesFunc([]gridgraph.Position{e}, t.moves, capacity); err != nil {
		return nil, err
	}
	if !t.fromStart.Has(e) {
		return nil, ErrNoRoute
	}
	log.Debug().Str("puzzle", "racetrack").Int("track_cells", t.fromStart.Len()).Msg("measured")

	return t, nil
}

// moves steps onto orthogonal track cells.
func (t *Track) moves(p gridgraph.Position) []state.Edge[gridgraph.Position] {
	out := make([]state.Edge[gridgraph.Position], 0, 4)
	for _, d := range gridgraph.Cardinals {
		q := p.Step(d)
		if r := t.Grid.At(q); r != '#' && r != 0 {
			out = append(out, state.Edge[gridgraph.Position]{Cost: 1, To: q})
		}
	}
	return out
}

// Best is the honest race time from S to E.
func (t *Track) Best() int64 {
	d, _ := t.fromStart.Get(t.End)
	return d
}

// Cheats counts the cheats of length at most maxLen that save at least minSaving.
func (t *Track) Cheats(maxLen int, minSaving int64) int {
	best := t.Best()
	count := 0
	for a, t1 := range t.fromStart {
		for _, b := range a.WithinRange(maxLen) {
			t2, ok := t.toEnd.Get(b)
			if !ok {
				continue
			}
			if t1+int64(a.Manhattan(b))+t2+minSaving <= best {
				count++
			}
		}
	}
	return count
}

// Savings tallies every improving cheat of length at most maxLen by the time
// it saves.
func (t *Track) Savings(maxLen int) map[int64]int {
	best := t.Best()
	out := make(map[int64]int)
	for a, t1 := range t.fromStart {
		for _, b := range a.WithinRange(maxLen) {
			if t2, ok := t.toEnd.Get(b); ok {
				if saved := best - (t1 + int64(a.Manhattan(b)) + t2); saved > 0 {
					out[saved]++
				}
			}
		}
	}
	return out
}

// Solver plugs the race track into the puzzle registry.
type Solver struct {
	ShortCheat int   // part 1 cheat length; DefaultShortCheat when zero
	LongCheat  int   // part 2 cheat length; DefaultLongCheat when zero
	MinSaving  int64 // DefaultMinSaving when zero
}

// Name implements puzzle.Solver.
func (Solver) Name() string { return "racetrack" }

// Solve implements puzzle.Solver.
func (s Solver) Solve(input string) (puzzle.Answer, error) {
	t, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	short, long, saving := s.ShortCheat, s.LongCheat, s.MinSaving
	if short <= 0 {
		short = DefaultShortCheat
	}
	if long <= 0 {
		long = DefaultLongCheat
	}
	if saving <= 0 {
		saving = DefaultMinSaving
	}
	return puzzle.Answer{
		Part1: strconv.Itoa(t.Cheats(short, saving)),
		Part2: strconv.Itoa(t.Cheats(long, saving)),
	}, nil
}
