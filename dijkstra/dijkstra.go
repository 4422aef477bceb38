// Package dijkstra implements multi-source uniform-cost search over
// lazily generated state spaces.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the V states and E edges reachable from the sources.
//   - Space: O(V + E); the frontier may hold stale duplicates (lazy decrease-key).
//
// Notes on implementation choices:
//
//   - Negative costs are detected per edge during relaxation; the state space
//     is generated on demand, so there is no edge list to pre-scan.
//   - Any edge with cost ≥ InfEdgeThreshold is an impassable "wall".
//   - An edge whose cost would push a distance past math.MaxInt64 is skipped.
//   - Exploration stops once the minimum distance in the frontier exceeds MaxDistance.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/state"
)

// Distances computes the minimum cost from the source set to every state
// reachable through Successors.
//
// Returns:
//
//   - dist: reached state → minimum distance. Unreachable states are absent.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means one shortest route to v ends with the edge u→v.
//     Sources have no entry.
//   - err:  ErrNoSource, or a wrapped ErrNegativeCost.
func Distances[S state.State[S]](sources []S, opts ...Option) (DistanceMap[S], map[S]S, error) {
	return DistancesFunc(sources, state.Forward[S](), opts...)
}

// DistancesFunc is Distances over an explicit expander. Passing
// state.Backward computes distances over the reverse graph, i.e. the cost
// from every state to the nearest source.
//
// Preconditions and validation (in order):
//  1. sources must be non-empty (ErrNoSource).
//  2. every relaxed edge must have a non-negative cost (ErrNegativeCost).
//
// Duplicate sources collapse to a single root at distance 0.
func DistancesFunc[S comparable](sources []S, expand state.Expander[S], opts ...Option) (DistanceMap[S], map[S]S, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate sources.
	if len(sources) == 0 {
		return nil, nil, ErrNoSource
	}

	// 3) Prepare data structures.
	capacity := cfg.Capacity
	if capacity < len(sources) {
		capacity = len(sources)
	}
	r := &runner[S]{
		expand:  expand,
		options: cfg,
		dist:    make(DistanceMap[S], capacity),
		visited: make(map[S]struct{}, capacity),
		pq:      frontier.New[S](capacity),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S, capacity)
	}

	// 4) Seed and run.
	r.init(sources)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	expand  state.Expander[S]
	options Options
	dist    DistanceMap[S]     // best known distance per discovered state
	prev    map[S]S            // predecessor on a shortest route; nil unless ReturnPath
	visited map[S]struct{}     // states whose distance is final
	pq      *frontier.Queue[S] // priority = g
}

// init records every distinct source at distance 0 and pushes it.
func (r *runner[S]) init(sources []S) {
	for _, s := range sources {
		if _, dup := r.dist[s]; dup {
			continue
		}
		r.dist[s] = 0
		r.pq.Push(s, 0, 0)
	}
}

// process repeatedly extracts the closest unfinished state and relaxes its edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable states processed).
//   - The minimum distance in the frontier exceeds MaxDistance.
func (r *runner[S]) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		u := item.State

		// Stale entry for an already finalized state.
		if _, done := r.visited[u]; done {
			continue
		}
		if item.G > r.options.MaxDistance {
			return nil
		}
		r.visited[u] = struct{}{}

		if err := r.relax(u, item.G); err != nil {
			return err
		}
	}
}

// relax examines each outgoing edge of u, finalized at distance d, and
// records strictly shorter distances to its targets.
func (r *runner[S]) relax(u S, d int64) error {
	for _, e := range r.expand(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		if e.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		if _, done := r.visited[e.To]; done {
			continue
		}

		// Costs that would overflow int64 are unreachable.
		if e.Cost > math.MaxInt64-d {
			continue
		}
		next := d + e.Cost
		if next > r.options.MaxDistance {
			continue
		}
		// "<" rather than "≤": equal distances keep the first predecessor found.
		if old, seen := r.dist[e.To]; seen && next >= old {
			continue
		}

		r.dist[e.To] = next
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Push(e.To, next, next)
	}

	return nil
}

// PathTo rebuilds the route from a source to target using the maps returned
// by Distances with WithReturnPath. It reports false when target is not in
// dist or prev is nil.
func PathTo[S comparable](dist DistanceMap[S], prev map[S]S, target S) ([]S, bool) {
	if prev == nil || !dist.Has(target) {
		return nil, false
	}
	route := []S{target}
	for cur := target; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		route = append(route, p)
		cur = p
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, true
}
