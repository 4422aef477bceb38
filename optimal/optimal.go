package optimal

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/state"
)

// States returns every state on some minimum-cost route from starts to goals,
// searching forward over Successors and backward over Predecessors.
func States[S state.Reversible[S]](starts, goals []S, opts ...Option) (Set[S], error) {
	return StatesFunc(starts, goals, state.Forward[S](), state.Backward[S](), opts...)
}

// StatesFunc is States over explicit expanders. backward must be the inverse
// of forward.
func StatesFunc[S comparable](starts, goals []S, forward, backward state.Expander[S], opts ...Option) (Set[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(starts) == 0 {
		return Set[S]{}, ErrNoStart
	}
	if len(goals) == 0 {
		return Set[S]{}, ErrNoGoal
	}

	// 1) Forward distances, recording expansion order for the inverse check.
	var expanded []S
	track := forward
	if cfg.InverseCheck {
		track = func(s S) []state.Edge[S] {
			expanded = append(expanded, s)
			return forward(s)
		}
	}
	fwd, _, err := dijkstra.DistancesFunc(starts, track, dijkstra.WithCapacity(cfg.Capacity))
	if err != nil {
		return Set[S]{}, fmt.Errorf("optimal: forward search: %w", err)
	}
	if cfg.InverseCheck {
		if err = state.VerifyInverseFunc(expanded, forward, backward); err != nil {
			return Set[S]{}, err
		}
	}

	// 2) best = min over reachable goals.
	best, found := bestGoal(fwd, goals)
	if !found {
		return Set[S]{Members: map[S]struct{}{}}, nil
	}

	// 3) Backward distances, bounded by best: farther states cannot qualify.
	bwd, _, err := dijkstra.DistancesFunc(goals, backward,
		dijkstra.WithCapacity(cfg.Capacity),
		dijkstra.WithMaxDistance(best),
	)
	if err != nil {
		return Set[S]{}, fmt.Errorf("optimal: backward search: %w", err)
	}

	// 4) Join.
	set := Set[S]{Cost: best, Found: true, Members: make(map[S]struct{})}
	small, large := fwd, bwd
	if len(bwd) < len(fwd) {
		small, large = bwd, fwd
	}
	for s, d := range small {
		if e, ok := large[s]; ok && d+e == best {
			set.Members[s] = struct{}{}
		}
	}

	return set, nil
}

// bestGoal returns the smallest forward distance over goals.
func bestGoal[S comparable](fwd dijkstra.DistanceMap[S], goals []S) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, g := range goals {
		if d, ok := fwd.Get(g); ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}
