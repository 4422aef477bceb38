package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/state"
)

// Solve runs A* from starts until a state with IsEnd() == true is popped.
// See SolveFunc for the algorithm.
func Solve[S state.Goal[S]](starts []S, opts ...Option) (Result[S], error) {
	return SolveFunc(
		starts,
		state.Forward[S](),
		func(s S) bool { return s.IsEnd() },
		func(s S) int64 { return s.Heuristic() },
		opts...,
	)
}

// SolveFunc runs A* over an explicit expander, goal test and heuristic.
// It lets callers search a state type in a direction other than its own
// Successors, or with a heuristic chosen at the call site.
//
// Steps:
//  1. Seed the frontier with every distinct start at g = 0.
//  2. Pop the entry with the lowest g + h; skip it if its state is closed.
//  3. Close the state; if it is a goal, rebuild the route and return.
//  4. Relax each outgoing edge: record next_g when it beats the best known
//     cost of the target, set the predecessor and push the target.
//  5. When the frontier empties, report Found == false.
func SolveFunc[S comparable](
	starts []S,
	expand state.Expander[S],
	isEnd func(S) bool,
	heuristic func(S) int64,
	opts ...Option,
) (Result[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(starts) == 0 {
		return Result[S]{}, ErrNoStart
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = len(starts)
	}
	s := &searcher[S]{
		options:   cfg,
		expand:    expand,
		isEnd:     isEnd,
		heuristic: heuristic,
		best:      make(map[S]int64, capacity),
		prev:      make(map[S]S, capacity),
		closed:    make(map[S]struct{}, capacity),
		open:      frontier.New[S](capacity),
	}
	s.seed(starts)

	return s.run()
}

// searcher holds the mutable state of a single A* call.
type searcher[S comparable] struct {
	options   Options
	expand    state.Expander[S]
	isEnd     func(S) bool
	heuristic func(S) int64

	best     map[S]int64    // lowest g recorded per state
	prev     map[S]S        // predecessor on the best known route; starts have none
	closed   map[S]struct{} // finalized states
	open     *frontier.Queue[S]
	expanded int
}

// seed pushes each distinct start at cost 0.
func (s *searcher[S]) seed(starts []S) {
	for _, st := range starts {
		if _, dup := s.best[st]; dup {
			continue
		}
		s.best[st] = 0
		s.open.Push(st, 0, s.heuristic(st))
	}
}

// run is the main A* loop.
func (s *searcher[S]) run() (Result[S], error) {
	for {
		item, ok := s.open.Pop()
		if !ok {
			return Result[S]{Expanded: s.expanded}, nil
		}
		u := item.State
		if _, done := s.closed[u]; done {
			continue // stale duplicate
		}
		s.closed[u] = struct{}{}
		s.expanded++

		if s.isEnd(u) {
			return Result[S]{
				Cost:     item.G,
				Route:    s.route(u),
				Found:    true,
				Expanded: s.expanded,
			}, nil
		}

		if err := s.relax(u, item.G); err != nil {
			return Result[S]{Expanded: s.expanded}, err
		}
	}
}

// relax pushes every improved successor of u, which was finalized at cost g.
func (s *searcher[S]) relax(u S, g int64) error {
	for _, e := range s.expand(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		if _, done := s.closed[e.To]; done {
			continue
		}
		// Costs that would overflow int64 are unreachable.
		if e.Cost > math.MaxInt64-g {
			continue
		}
		next := g + e.Cost
		if next > s.options.MaxCost {
			continue
		}
		if old, seen := s.best[e.To]; seen && next >= old {
			continue
		}
		s.best[e.To] = next
		s.prev[e.To] = u
		prio := next
		if h := s.heuristic(e.To); h > math.MaxInt64-next {
			prio = math.MaxInt64
		} else {
			prio += h
		}
		s.open.Push(e.To, next, prio)
	}

	return nil
}

// route walks predecessors back from goal to its start and returns the
// states in start→goal order.
func (s *searcher[S]) route(goal S) []S {
	path := []S{goal}
	for cur := goal; ; {
		p, ok := s.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
