package gridgraph

import "fmt"

// Direction is one of the eight compass directions, numbered clockwise from North.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Cardinals lists the four orthogonal directions clockwise from North.
var Cardinals = [4]Direction{North, East, South, West}

// Compass lists all eight directions clockwise from North.
var Compass = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var (
	dirOffsets = [8]Position{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	dirNames   = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	dirRunes   = [8]rune{'^', '↗', '>', '↘', 'v', '↙', '<', '↖'}
)

// TurnRight rotates d by 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 2) % 8 }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 6) % 8 }

// Reverse rotates d by 180°.
func (d Direction) Reverse() Direction { return (d + 4) % 8 }

// Offset returns the unit step for d.
func (d Direction) Offset() Position { return dirOffsets[d%8] }

// Rune returns the arrow drawn for d; cardinals use ^ > v <.
func (d Direction) Rune() rune { return dirRunes[d%8] }

// String returns the compass abbreviation, e.g. "NE".
func (d Direction) String() string { return dirNames[d%8] }

// ParseDirection accepts an arrow (^ > v <) or a cardinal letter (N E S W).
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^', 'N':
		return North, nil
	case '>', 'E':
		return East, nil
	case 'v', 'S':
		return South, nil
	case '<', 'W':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, r)
}
