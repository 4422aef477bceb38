package state

import (
	"errors"
	"fmt"
)

// ErrNotInverse indicates that Successors and Predecessors do not describe the
// same edge set.
var ErrNotInverse = errors.New("state: predecessors are not the inverse of successors")

// Edge is one weighted move yielded by a state's successor (or predecessor)
// enumeration. Cost must be non-negative.
type Edge[S any] struct {
	Cost int64 // cost of taking the move
	To   S     // state reached by the move
}

// State is the minimal capability set required by the all-distances solver:
// value equality (comparable) plus lazily generated weighted successors.
//
// Successors may be recomputed on every call but must return a finite slice,
// in a deterministic order, for deterministic tie-breaking in the solvers.
type State[S any] interface {
	comparable
	Successors() []Edge[S]
}

// Goal is the capability set required by the best-first solver.
//
// IsEnd reports whether the state satisfies the goal test.
// Heuristic returns an admissible lower bound on the cost to reach any goal;
// returning zero turns A* into uniform-cost search.
type Goal[S any] interface {
	State[S]
	IsEnd() bool
	Heuristic() int64
}

// Reversible pairs Successors with its inverse, Predecessors: for every edge
// s→t of cost c in s.Successors(), t.Predecessors() contains (c, s), and
// nothing else.
type Reversible[S any] interface {
	State[S]
	Predecessors() []Edge[S]
}

// Expander generates the outgoing edges of a state. The solvers run over an
// Expander so the same state type can be searched forward or backward.
type Expander[S comparable] func(S) []Edge[S]

// Forward returns the Expander that follows Successors.
func Forward[S State[S]]() Expander[S] {
	return func(s S) []Edge[S] { return s.Successors() }
}

// Backward returns the Expander that follows Predecessors, i.e. walks the
// reverse graph.
func Backward[S Reversible[S]]() Expander[S] {
	return func(s S) []Edge[S] { return s.Predecessors() }
}

// Side names which half of a forward/backward pairing is missing an edge.
type Side int

const (
	// SideForward means a predecessor edge has no matching successor edge.
	SideForward Side = iota
	// SideBackward means a successor edge has no matching predecessor edge.
	SideBackward
)

// String returns "forward" or "backward".
func (s Side) String() string {
	if s == SideForward {
		return "forward"
	}
	return "backward"
}

// InverseError describes the first edge found on one side of a pairing but
// not on the other. It wraps ErrNotInverse.
type InverseError[S any] struct {
	From, To S     // the edge From→To in forward orientation
	Cost     int64 // its cost
	Missing  Side  // which expander lacks it
}

// Error implements error.
func (e *InverseError[S]) Error() string {
	return fmt.Sprintf("%v: edge %v→%v (cost %d) missing on %s side",
		ErrNotInverse, e.From, e.To, e.Cost, e.Missing)
}

// Unwrap returns ErrNotInverse.
func (e *InverseError[S]) Unwrap() error { return ErrNotInverse }
