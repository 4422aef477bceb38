// Package runner solves a selection of registered puzzles against input
// files and reports the answers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/render"
)

// ErrMissingInput indicates that <input_dir>/<puzzle>.txt could not be read.
var ErrMissingInput = errors.New("runner: missing puzzle input")

// Report is the outcome of one puzzle.
type Report struct {
	Puzzle    string        `yaml:"puzzle"`
	InputHash string        `yaml:"input_hash"`
	Answer    puzzle.Answer `yaml:"answer"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Picture   string        `yaml:"picture,omitempty"`
}

// InputPath returns where Run looks for the input of name.
func InputPath(dir, name string) string {
	return filepath.Join(dir, name+".txt")
}

// Fingerprint hashes an input so reports can tell inputs apart.
func Fingerprint(input []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(input))
}

// Run solves every puzzle cfg selects (all registered ones when the
// selection is empty), at most cfg.Parallel at a time. The first failure
// cancels puzzles that have not started yet.
//
// Reports come back sorted by puzzle name.
func Run(ctx context.Context, cfg *config.Config, reg *puzzle.Registry) ([]Report, error) {
	names := lo.Uniq(cfg.Puzzles)
	if len(names) == 0 {
		names = reg.Names()
	}
	sort.Strings(names)

	solvers := make([]puzzle.Solver, len(names))
	for i, name := range names {
		s, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		solvers[i] = s
	}

	parallel := cfg.Parallel
	if parallel < 1 {
		parallel = 1
	}

	reports := make([]Report, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, s := range solvers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := solveOne(cfg, s)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func solveOne(cfg *config.Config, s puzzle.Solver) (Report, error) {
	name := s.Name()
	data, err := os.ReadFile(InputPath(cfg.InputDir, name))
	if err != nil {
		return Report{}, fmt.Errorf("%w: %s: %v", ErrMissingInput, name, err)
	}
	input := string(data)
	r := Report{Puzzle: name, InputHash: Fingerprint(data)}

	start := time.Now()
	r.Answer, err = s.Solve(input)
	r.Elapsed = time.Since(start)
	if err != nil {
		return Report{}, fmt.Errorf("runner: %s: %w", name, err)
	}
	log.Info().
		Str("puzzle", name).
		Str("input_hash", r.InputHash).
		Dur("elapsed", r.Elapsed).
		Msg("solved")

	if v, ok := s.(puzzle.Visualizer); ok && cfg.Render {
		theme := render.DefaultTheme()
		body, err := v.Visualize(input, theme)
		if err != nil {
			return Report{}, fmt.Errorf("runner: %s: render: %w", name, err)
		}
		r.Picture = render.Panel(name, body, theme)
	}

	return r, nil
}

// Write prints reports in the given format, config.FormatText or
// config.FormatYAML.
func Write(w io.Writer, reports []Report, format string) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText:
		for _, r := range reports {
			if _, err := fmt.Fprintf(w, "%s (%s, %v)\n  part 1: %s\n  part 2: %s\n",
				r.Puzzle, r.InputHash, r.Elapsed.Round(time.Microsecond), r.Answer.Part1, r.Answer.Part2); err != nil {
				return err
			}
			if r.Picture != "" {
				if _, err := fmt.Fprintln(w, r.Picture); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", config.ErrBadFormat, format)
	}
}
