// Package gridgraph treats a 2D character grid as a lazily explored graph:
// positions, compass directions, region analysis and minimal-cost wall
// breaches, all driven by the dijkstra solver.
//
// What:
//
//   - Grid wraps a rectangular block of runes parsed from text, with Conn4 or
//     Conn8 neighborhoods.
//   - Position and Direction provide the arithmetic puzzle move generators use
//     (steps, turns, Manhattan ranges).
//   - Regions identifies connected groups of equal symbols ("garden plots") and
//     measures their area, perimeter and number of straight sides.
//   - Breach finds the fewest impassable cells a route between two positions
//     has to cross (0-1 costs through dijkstra).
//   - ToCoreGraph converts the passable cells into a *core.Graph.
//
// Complexity:
//
//   - Parse:        O(W×H), Memory: O(W×H).
//   - Regions:      O(W×H×log(W×H)), Memory: O(W×H).
//   - Breach:       O(W×H×d×log(W×H)), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - ToCoreGraph:  O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrBadDirection: a rune does not name a direction.
//   - ErrNoPath: no route exists between the requested positions.
package gridgraph
