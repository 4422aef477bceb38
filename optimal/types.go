package optimal

import (
	"errors"
	"sort"
)

// Sentinel errors returned by States and StatesFunc.
var (
	// ErrNoStart indicates an empty start set.
	ErrNoStart = errors.New("optimal: no start state")

	// ErrNoGoal indicates an empty goal set.
	ErrNoGoal = errors.New("optimal: no goal state")
)

// Set is the union of all minimum-cost routes from the starts to the goals.
//
// When no goal is reachable, Found is false, Cost is zero and Members is empty.
type Set[S comparable] struct {
	Cost    int64          // cost of every optimal route
	Found   bool           // whether any goal was reachable
	Members map[S]struct{} // states on at least one optimal route
}

// Contains reports whether s lies on some optimal route.
func (s Set[S]) Contains(st S) bool {
	_, ok := s.Members[st]
	return ok
}

// Len returns the number of member states.
func (s Set[S]) Len() int { return len(s.Members) }

// Sorted returns the members ordered by less.
func (s Set[S]) Sorted(less func(a, b S) bool) []S {
	out := make([]S, 0, len(s.Members))
	for st := range s.Members {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

// Project collapses the members of set through key, e.g. from
// (position, facing) states down to grid cells.
func Project[S, K comparable](set Set[S], key func(S) K) map[K]struct{} {
	out := make(map[K]struct{}, len(set.Members))
	for st := range set.Members {
		out[key(st)] = struct{}{}
	}
	return out
}

// Options configures a reconstruction.
//
// InverseCheck – verify that the backward expander mirrors the forward one
// over every forward-expanded state before combining distances.
// Capacity     – size hint passed to both distance searches.
type Options struct {
	InverseCheck bool
	Capacity     int
}

// Option is a functional option for States.
type Option func(*Options)

// WithInverseCheck enables the forward/backward pairing check.
func WithInverseCheck() Option {
	return func(o *Options) { o.InverseCheck = true }
}

// WithCapacity pre-sizes the distance maps for about n states.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns the defaults: no inverse check, no size hint.
func DefaultOptions() Options {
	return Options{}
}
