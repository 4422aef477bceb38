package puzzle_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/katalvlaran/lvsearch/puzzle"
)

type stub string

func (s stub) Name() string { return string(s) }

func (s stub) Solve(input string) (puzzle.Answer, error) {
	return puzzle.Answer{Part1: input, Part2: string(s)}, nil
}

func TestRegistry(t *testing.T) {
	is := is.New(t)
	r := puzzle.NewRegistry()
	r.MustRegister(stub("trails"), stub("gardens"))
	is.NoErr(r.Register(stub("reindeer")))

	err := r.Register(stub("trails"))
	is.True(errors.Is(err, puzzle.ErrDuplicate))
	is.True(errors.Is(r.Register(stub("")), puzzle.ErrEmptyName))

	is.Equal(r.Names(), []string{"gardens", "reindeer", "trails"})

	s, err := r.Get("gardens")
	is.NoErr(err)
	ans, err := s.Solve("x")
	is.NoErr(err)
	is.Equal(ans, puzzle.Answer{Part1: "x", Part2: "gardens"})

	_, err = r.Get("nope")
	is.True(errors.Is(err, puzzle.ErrUnknown))
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()
	puzzle.NewRegistry().MustRegister(stub("a"), stub("a"))
}
