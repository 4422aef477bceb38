package trails

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

const example = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

func TestSolve_Example(t *testing.T) {
	is := is.New(t)
	ans, err := Solver{}.Solve(example)
	is.NoErr(err)
	is.Equal(ans.Part1, "36")
	is.Equal(ans.Part2, "81")
}

func TestScore_ForkedTrail(t *testing.T) {
	is := is.New(t)
	m, err := Parse(`...0...
...1...
...2...
6543456
7.....7
8.....8
9.....9`)
	is.NoErr(err)
	head := gridgraph.Position{X: 3, Y: 0}
	is.Equal(m.Score(head), 2)
	is.Equal(m.Rating(head), 2)
}

func TestRating_ManyTrails(t *testing.T) {
	is := is.New(t)
	m, err := Parse(`012345
123456
234567
345678
4.6789
56789.`)
	is.NoErr(err)
	is.Equal(m.Rating(gridgraph.Position{}), 227)
}

func TestScore_NotATrailhead(t *testing.T) {
	is := is.New(t)
	m, err := Parse("0123456789")
	is.NoErr(err)
	is.Equal(m.Trailheads(), []gridgraph.Position{{X: 0, Y: 0}})
	is.Equal(m.Score(gridgraph.Position{}), 1)
	is.Equal(m.Rating(gridgraph.Position{}), 1)
}

func TestParse_BadHeight(t *testing.T) {
	is := is.New(t)
	_, err := Parse("01x")
	is.True(errors.Is(err, ErrBadHeight))
}
