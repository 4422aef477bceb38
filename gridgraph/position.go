package gridgraph

import "fmt"

// Position is a cell coordinate. Y grows downward.
type Position struct {
	X, Y int
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position { return Position{p.X + q.X, p.Y + q.Y} }

// Sub returns the offset from q to p.
func (p Position) Sub(q Position) Position { return Position{p.X - q.X, p.Y - q.Y} }

// Step moves one cell in direction d.
func (p Position) Step(d Direction) Position { return p.Add(d.Offset()) }

// StepBy moves n cells in direction d.
func (p Position) StepBy(d Direction, n int) Position {
	o := d.Offset()
	return Position{p.X + n*o.X, p.Y + n*o.Y}
}

// Manhattan returns |dx| + |dy|.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Adjacent reports whether q is one orthogonal step from p.
func (p Position) Adjacent(q Position) bool { return p.Manhattan(q) == 1 }

// WithinRange returns every position q != p with Manhattan(p, q) <= r, in
// row-major order. The result has 2r(r+1) entries.
func (p Position) WithinRange(r int) []Position {
	if r <= 0 {
		return nil
	}
	out := make([]Position, 0, 2*r*(r+1))
	for dy := -r; dy <= r; dy++ {
		span := r - abs(dy)
		for dx := -span; dx <= span; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Position{p.X + dx, p.Y + dy})
		}
	}
	return out
}

// String renders p as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
