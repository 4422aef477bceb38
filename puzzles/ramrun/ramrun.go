// Package ramrun escapes a square memory space while bytes fall into it.
//
// Part 1 is the fewest steps from the top-left to the bottom-right corner once
// the first bytes have fallen (A* with a Manhattan heuristic). Part 2 is the
// first byte whose fall cuts every route, found by doubling the byte count and
// then bisecting over reachability checks.
package ramrun

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/render"
	"github.com/katalvlaran/lvsearch/state"
)

// Puzzle defaults: a 71×71 space and a kilobyte of fallen bytes.
const (
	DefaultSize   = 70
	DefaultFallen = 1024
)

var (
	// ErrBadLine indicates a line that is not "x,y".
	ErrBadLine = errors.New("ramrun: malformed byte position")
	// ErrNoRoute indicates that the exit cannot be reached.
	ErrNoRoute = errors.New("ramrun: exit unreachable")
	// ErrNeverBlocked indicates that all bytes fell without cutting the route.
	ErrNeverBlocked = errors.New("ramrun: exit never becomes unreachable")
)

// Parse reads one "x,y" position per line.
func Parse(input string) ([]gridgraph.Position, error) {
	lines := lo.Filter(strings.Split(strings.ReplaceAll(input, "\r", ""), "\n"),
		func(l string, _ int) bool { return strings.TrimSpace(l) != "" })
	out := make([]gridgraph.Position, 0, len(lines))
	for i, line := range lines {
		xs, ys, ok := strings.Cut(strings.TrimSpace(line), ",")
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if !ok || errX != nil || errY != nil || x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadLine, i+1, line)
		}
		out = append(out, gridgraph.Position{X: x, Y: y})
	}
	return out, nil
}

// Memory is the space with the arrival time of every byte.
type Memory struct {
	Size  int // last valid coordinate on both axes
	Bytes []gridgraph.Position
	fall  map[gridgraph.Position]int // first arrival index per position
}

// NewMemory indexes bytes for a space whose coordinates run 0..size.
// A byte outside that space fails with ErrBadLine.
func NewMemory(size int, bytes []gridgraph.Position) (*Memory, error) {
	fall := make(map[gridgraph.Position]int, len(bytes))
	for i, b := range bytes {
		if b.X < 0 || b.Y < 0 || b.X > size || b.Y > size {
			return nil, fmt.Errorf("%w: byte %d at %v outside 0..%d", ErrBadLine, i+1, b, size)
		}
		if _, seen := fall[b]; !seen {
			fall[b] = i
		}
	}
	return &Memory{Size: size, Bytes: bytes, fall: fall}, nil
}

// snapshot is the memory after the first n bytes fell.
type snapshot struct {
	mem *Memory
	n   int
}

func (s *snapshot) open(p gridgraph.Position) bool {
	if p.X < 0 || p.Y < 0 || p.X > s.mem.Size || p.Y > s.mem.Size {
		return false
	}
	t, corrupted := s.mem.fall[p]
	return !corrupted || t >= s.n
}

func (s *snapshot) exit() gridgraph.Position {
	return gridgraph.Position{X: s.mem.Size, Y: s.mem.Size}
}

// cursor is a search state: a position inside one snapshot.
type cursor struct {
	pos  gridgraph.Position
	snap *snapshot
}

func (c cursor) Successors() []state.Edge[cursor] {
	out := make([]state.Edge[cursor], 0, 4)
	for _, d := range gridgraph.Cardinals {
		if next := c.pos.Step(d); c.snap.open(next) {
			out = append(out, state.Edge[cursor]{Cost: 1, To: cursor{next, c.snap}})
		}
	}
	return out
}

func (c cursor) IsEnd() bool { return c.pos == c.snap.exit() }

func (c cursor) Heuristic() int64 { return int64(c.pos.Manhattan(c.snap.exit())) }

// Route returns a shortest route to the exit after n bytes fell, or
// false when there is none.
func (m *Memory) Route(n int) ([]gridgraph.Position, bool, error) {
	snap := &snapshot{mem: m, n: n}
	start := cursor{gridgraph.Position{}, snap}
	if !snap.open(start.pos) {
		return nil, false, nil
	}
	res, err := astar.Solve([]cursor{start})
	if err != nil {
		return nil, false, err
	}
	log.Debug().Str("puzzle", "ramrun").Int("bytes", n).Int("expanded", res.Expanded).Bool("found", res.Found).Msg("route")
	if !res.Found {
		return nil, false, nil
	}
	return lo.Map(res.Route, func(c cursor, _ int) gridgraph.Position { return c.pos }), true, nil
}

// MinSteps returns the step count of a shortest route after n bytes fell.
func (m *Memory) MinSteps(n int) (int, error) {
	route, ok, err := m.Route(n)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w after %d bytes", ErrNoRoute, n)
	}
	return len(route) - 1, nil
}

// FirstBlocker returns the first byte after which the exit is unreachable.
// It doubles the byte count from start until the route breaks, then bisects.
func (m *Memory) FirstBlocker(start int) (gridgraph.Position, error) {
	reachable := func(n int) (bool, error) {
		_, ok, err := m.Route(n)
		return ok, err
	}
	total := len(m.Bytes)
	if start < 1 {
		start = 1
	}

	// 1) lower is always reachable, upper never.
	lower, upper := 0, 0
	for n := start; ; n *= 2 {
		if n > total {
			n = total
		}
		ok, err := reachable(n)
		if err != nil {
			return gridgraph.Position{}, err
		}
		if !ok {
			upper = n
			break
		}
		if n == total {
			return gridgraph.Position{}, ErrNeverBlocked
		}
		lower = n
	}

	// 2) bisect
	for upper > lower+1 {
		mid := (lower + upper) / 2
		ok, err := reachable(mid)
		if err != nil {
			return gridgraph.Position{}, err
		}
		if ok {
			lower = mid
		} else {
			upper = mid
		}
	}

	return m.Bytes[lower], nil
}

// Solver plugs the memory escape into the puzzle registry.
type Solver struct {
	Size   int // last coordinate; DefaultSize when zero
	Fallen int // bytes fallen for part 1; DefaultFallen when zero
}

// Name implements puzzle.Solver.
func (Solver) Name() string { return "ramrun" }

func (s Solver) params() (int, int) {
	size, fallen := s.Size, s.Fallen
	if size <= 0 {
		size = DefaultSize
	}
	if fallen <= 0 {
		fallen = DefaultFallen
	}
	return size, fallen
}

// Solve implements puzzle.Solver.
func (s Solver) Solve(input string) (puzzle.Answer, error) {
	bytes, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	size, fallen := s.params()
	m, err := NewMemory(size, bytes)
	if err != nil {
		return puzzle.Answer{}, err
	}

	steps, err := m.MinSteps(fallen)
	if err != nil {
		return puzzle.Answer{}, err
	}
	blocker, err := m.FirstBlocker(fallen)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: strconv.Itoa(steps),
		Part2: fmt.Sprintf("%d,%d", blocker.X, blocker.Y),
	}, nil
}

// Visualize draws the fallen bytes and a shortest route.
func (s Solver) Visualize(input string, theme render.Theme) (string, error) {
	bytes, err := Parse(input)
	if err != nil {
		return "", err
	}
	size, fallen := s.params()
	m, err := NewMemory(size, bytes)
	if err != nil {
		return "", err
	}
	g, err := gridgraph.NewGrid(size+1, size+1, '.', gridgraph.DefaultGridOptions())
	if err != nil {
		return "", err
	}
	for _, b := range bytes[:min(fallen, len(bytes))] {
		if err := g.Set(b, '#'); err != nil {
			return "", err
		}
	}
	route, ok, err := m.Route(fallen)
	if err != nil {
		return "", err
	}
	_ = g.Set(gridgraph.Position{}, 'S')
	_ = g.Set(gridgraph.Position{X: size, Y: size}, 'E')
	if !ok {
		return render.Grid(g, nil, theme), nil
	}
	return render.Grid(g, render.Route(route, 'O'), theme), nil
}
