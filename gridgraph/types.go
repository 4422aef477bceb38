// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvsearch.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrBadDirection indicates a rune that does not name a direction.
	ErrBadDirection = errors.New("gridgraph: unknown direction")
	// ErrNoPath indicates no route exists between two positions.
	ErrNoPath = errors.New("gridgraph: no path between specified positions")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// Grid is a rectangular block of runes. Rows are indexed by Y (top to bottom),
// columns by X (left to right).
// Width and Height define dimensions; Conn is set from GridOptions during construction.
// offsets is precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	cells         [][]rune
	offsets       []Direction
}

// Region is a maximal 4-connected group of cells sharing one symbol.
// Cells are in row-major order.
type Region struct {
	Symbol rune
	Cells  []Position
}
