// Package puzzles collects every bundled solver into one registry.
package puzzles

import (
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/puzzles/gardens"
	"github.com/katalvlaran/lvsearch/puzzles/racetrack"
	"github.com/katalvlaran/lvsearch/puzzles/ramrun"
	"github.com/katalvlaran/lvsearch/puzzles/reindeer"
	"github.com/katalvlaran/lvsearch/puzzles/trails"
)

// Default returns a registry holding every bundled solver with its default
// parameters.
func Default() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.MustRegister(
		reindeer.Solver{},
		ramrun.Solver{},
		racetrack.Solver{},
		trails.Solver{},
		gardens.Solver{},
	)
	return r
}
