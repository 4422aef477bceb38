// Package puzzle defines the interface every puzzle solver implements and a
// registry that the command surface selects solvers from.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsearch/render"
)

var (
	// ErrEmptyName indicates a solver whose Name is empty.
	ErrEmptyName = errors.New("puzzle: solver name is empty")
	// ErrDuplicate indicates a second solver registered under the same name.
	ErrDuplicate = errors.New("puzzle: solver already registered")
	// ErrUnknown indicates a lookup for a name nobody registered.
	ErrUnknown = errors.New("puzzle: unknown puzzle")
)

// Answer holds the two scalar answers of a puzzle, already formatted.
type Answer struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Solver parses a textual input and computes both answers.
type Solver interface {
	Name() string
	Solve(input string) (Answer, error)
}

// Visualizer is implemented by solvers that can draw their solution.
type Visualizer interface {
	Visualize(input string, theme render.Theme) (string, error)
}

// Registry maps names to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[string]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[string]Solver)}
}

// Register adds s under s.Name().
func (r *Registry) Register(s Solver) error {
	name := s.Name()
	if name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.solvers[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.solvers[name] = s

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(solvers ...Solver) {
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

// Get returns the solver registered under name.
func (r *Registry) Get(name string) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return s, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.solvers)
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
