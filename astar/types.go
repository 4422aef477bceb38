package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve and SolveFunc.
var (
	// ErrNoStart indicates that the start set was empty.
	ErrNoStart = errors.New("astar: no start state")

	// ErrNegativeCost indicates that a state generated an edge with negative cost.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrBadMaxCost indicates a negative MaxCost.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Result is the outcome of one best-first search.
//
// When Found is false, Cost is zero and Route is nil; Expanded still reports
// how much of the graph was explored before the frontier ran dry.
type Result[S any] struct {
	Cost     int64 // total cost of Route
	Route    []S   // states from a start state to the goal, inclusive
	Found    bool  // whether a goal state was reached
	Expanded int   // number of states finalized (popped and expanded)
}

// Options configures a search.
//
// MaxCost  – entries whose accumulated cost would exceed MaxCost are never
// queued. Default math.MaxInt64 (no bound).
// Capacity – initial size hint for the bookkeeping maps and the frontier.
type Options struct {
	MaxCost  int64
	Capacity int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithMaxCost bounds exploration to routes costing at most max.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithCapacity pre-sizes internal maps for about n states.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns the defaults: no cost bound, no capacity hint.
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.MaxInt64,
		Capacity: 0,
	}
}
