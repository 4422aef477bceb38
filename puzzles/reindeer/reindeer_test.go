package reindeer

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/render"
	"github.com/katalvlaran/lvsearch/state"
)

var smallMaze = strings.Join([]string{
	"###############",
	"#.......#....E#",
	"#.#.###.#.###.#",
	"#.....#.#...#.#",
	"#.###.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#####.###.#",
	"#...........#.#",
	"###.#.#####.#.#",
	"#...#.....#.#.#",
	"#.#.#.###.#.#.#",
	"#.....#...#.#.#",
	"#.###.#.#.#.#.#",
	"#S..#.....#...#",
	"###############",
}, "\n")

var largerMaze = strings.Join([]string{
	"#################",
	"#...#...#...#..E#",
	"#.#.#.#.#.#.#.#.#",
	"#.#.#.#...#...#.#",
	"#.#.#.#.###.#.#.#",
	"#...#.#.#.....#.#",
	"#.#.#.#.#.#####.#",
	"#.#...#.#.#.....#",
	"#.#.#####.#.###.#",
	"#.#.#.......#...#",
	"#.#.###.#####.###",
	"#.#.#...#.....#.#",
	"#.#.#.#####.###.#",
	"#.#.#.........#.#",
	"#.#.#.#########.#",
	"#S#.............#",
	"#################",
}, "\n")

func TestSolve_Examples(t *testing.T) {
	is := is.New(t)
	for _, c := range []struct {
		maze         string
		part1, part2 string
	}{
		{smallMaze, "7036", "45"},
		{largerMaze, "11048", "64"},
	} {
		ans, err := Solver{}.Solve(c.maze)
		is.NoErr(err)
		is.Equal(ans.Part1, c.part1)
		is.Equal(ans.Part2, c.part2)
	}
}

func TestLowestScore_RouteIsConsistent(t *testing.T) {
	is := is.New(t)
	m, err := Parse(smallMaze)
	is.NoErr(err)
	score, route, err := m.LowestScore()
	is.NoErr(err)
	is.Equal(route[0], m.StartState())
	is.True(route[len(route)-1].IsEnd())

	var sum int64
	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		if prev.Pos == cur.Pos {
			sum += turnCost
		} else {
			is.True(prev.Pos.Adjacent(cur.Pos))
			sum += stepCost
		}
	}
	is.Equal(sum, score)
}

// TestPredecessorsInvertSuccessors checks the backward move generator over
// every state reachable from the start.
func TestPredecessorsInvertSuccessors(t *testing.T) {
	is := is.New(t)
	for _, text := range []string{smallMaze, largerMaze} {
		m, err := Parse(text)
		is.NoErr(err)
		dist, _, err := dijkstra.Distances([]Reindeer{m.StartState()})
		is.NoErr(err)
		states := make([]Reindeer, 0, dist.Len())
		for s := range dist {
			states = append(states, s)
		}
		is.NoErr(state.VerifyInverse(states))
	}
}

func TestBestTiles_StraightCorridor(t *testing.T) {
	is := is.New(t)
	m, err := Parse("#####\n#S.E#\n#####")
	is.NoErr(err)
	score, _, err := m.LowestScore()
	is.NoErr(err)
	is.Equal(score, int64(2))
	tiles, err := m.BestTiles()
	is.NoErr(err)
	is.Equal(len(tiles), 3)
}

func TestErrors(t *testing.T) {
	is := is.New(t)
	_, err := Parse("#####\n#S..#\n#####")
	is.True(errors.Is(err, ErrMissingTile))

	_, err = Parse("")
	is.True(errors.Is(err, gridgraph.ErrEmptyGrid))

	_, err = Solver{}.Solve("#######\n#S.#.E#\n#######")
	is.True(errors.Is(err, ErrNoRoute))
}

func TestVisualize(t *testing.T) {
	is := is.New(t)
	out, err := Solver{}.Visualize("#####\n#S.E#\n#####", render.PlainTheme())
	is.NoErr(err)
	is.Equal(out, "#####\n#S>E#\n#####")
}

func TestVisualize_TiedRoutes(t *testing.T) {
	is := is.New(t)
	out, err := Solver{}.Visualize("#####\n#...#\n#S#E#\n#...#\n#####", render.PlainTheme())
	is.NoErr(err)
	top := "#####\n#>>v#\n#S#E#\n#OOO#\n#####"
	bottom := "#####\n#OOO#\n#S#E#\n#>>^#\n#####"
	is.True(out == top || out == bottom) // one route drawn, the tied one marked
}
