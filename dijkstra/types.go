// Package dijkstra defines the result types and configuration options of the
// all-distances solver.
//
// Options:
//
//	– ReturnPath:       if true, return the predecessor map alongside distances.
//	– MaxDistance:      optional cap on distances to explore; farther states are absent.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//	– Capacity:         initial size hint for the bookkeeping maps.
//
// Errors (sentinel):
//
//	– ErrNoSource         if the source set is empty.
//	– ErrNegativeCost     if an expanded state yields an edge with negative cost.
//	– ErrBadMaxDistance   if MaxDistance < 0 (option constructor panics).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 (option constructor panics).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source state was supplied.
	ErrNoSource = errors.New("dijkstra: no source state")

	// ErrNegativeCost indicates that a negative edge cost was encountered
	// while relaxing the successors of a finalized state.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// DistanceMap maps every state reachable from the source set to its minimum
// cost. Unreachable states are absent; there is no "infinite" entry.
type DistanceMap[S comparable] map[S]int64

// Get returns the distance to s and whether s was reached.
func (d DistanceMap[S]) Get(s S) (int64, bool) {
	v, ok := d[s]
	return v, ok
}

// Has reports whether s was reached.
func (d DistanceMap[S]) Has(s S) bool {
	_, ok := d[s]
	return ok
}

// Len returns the number of reached states.
func (d DistanceMap[S]) Len() int { return len(d) }

// Farthest returns the largest recorded distance, or false for an empty map.
func (d DistanceMap[S]) Farthest() (int64, bool) {
	var (
		max   int64
		found bool
	)
	for _, v := range d {
		if !found || v > max {
			max, found = v, true
		}
	}

	return max, found
}

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (states beyond are absent).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// Capacity         – pre-size hint for the maps and the frontier. Default 0.
type Options struct {
	ReturnPath       bool  // Whether to return the predecessor map
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Cost threshold above which edges are non-traversable
	Capacity         int   // Expected number of reachable states
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which edges are
// considered non-traversable. Edges with cost ≥ threshold are skipped entirely.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
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

// DefaultOptions returns an Options struct initialized with the defaults.
//
// Defaults:
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - Capacity:         0 (maps grow on demand).
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
