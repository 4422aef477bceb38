// Package gridgraph provides utilities to treat a 2D grid of runes as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph
//   - Identification of equal-symbol regions
//   - Minimal-cost breaches between positions
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// NewGrid returns a width×height grid filled with fill.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(width, height int, fill rune, opts GridOptions) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = fill
		}
		cells[y] = row
	}
	return newGrid(cells, opts), nil
}

// Parse builds a Grid from newline-separated rows. Trailing blank lines and
// carriage returns are ignored.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string, opts GridOptions) (*Grid, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(line)
		if len(cells[y]) == 0 {
			return nil, ErrEmptyGrid
		}
		if len(cells[y]) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, y, len(cells[y]), len(cells[0]))
		}
	}
	return newGrid(cells, opts), nil
}

func newGrid(cells [][]rune, opts GridOptions) *Grid {
	offsets := Cardinals[:]
	if opts.Conn == Conn8 {
		offsets = Compass[:]
	}
	return &Grid{
		Width:   len(cells[0]),
		Height:  len(cells),
		Conn:    opts.Conn,
		cells:   cells,
		offsets: offsets,
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the rune at p, or 0 when p is out of bounds.
func (g *Grid) At(p Position) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Y][p.X]
}

// Set stores r at p. Returns ErrOutOfBounds for positions outside the grid.
func (g *Grid) Set(p Position, r rune) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.cells[p.Y][p.X] = r
	return nil
}

// Find returns the first position holding r in row-major order.
func (g *Grid) Find(r rune) (Position, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == r {
				return Position{x, y}, true
			}
		}
	}
	return Position{}, false
}

// FindAll returns every position holding r in row-major order.
func (g *Grid) FindAll(r rune) []Position {
	var out []Position
	for y, row := range g.cells {
		for x, c := range row {
			if c == r {
				out = append(out, Position{x, y})
			}
		}
	}
	return out
}

// Positions returns every position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, Position{x, y})
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of p under g.Conn, clockwise
// from North.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(g.offsets))
	for _, d := range g.offsets {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Rows returns the grid as strings, top to bottom.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for y, row := range g.cells {
		out[y] = string(row)
	}
	return out
}

// String joins Rows with newlines.
func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]rune, g.Height)
	for y, row := range g.cells {
		cells[y] = append([]rune(nil), row...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Conn: g.Conn, cells: cells, offsets: g.offsets}
}

// VertexID formats the vertex identifier used by ToCoreGraph for p.
func VertexID(p Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ToCoreGraph converts the passable cells of g into an undirected *core.Graph.
// Each such cell becomes a vertex with ID VertexID(p); unit-cost edges connect
// passable neighbors according to g.Conn.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (g *Grid) ToCoreGraph(passable func(rune) bool) *core.Graph {
	cg := core.NewGraph()
	for _, p := range g.Positions() {
		if passable(g.At(p)) {
			_ = cg.AddVertex(VertexID(p))
		}
	}
	// Each undirected pair once: only look at neighbors that come later in
	// row-major order.
	for _, p := range g.Positions() {
		if !passable(g.At(p)) {
			continue
		}
		for _, q := range g.Neighbors(p) {
			if q.Y < p.Y || (q.Y == p.Y && q.X < p.X) || !passable(g.At(q)) {
				continue
			}
			_ = cg.AddEdge(VertexID(p), VertexID(q), 1)
		}
	}

	return cg
}
