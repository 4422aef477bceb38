// Package astar implements best-first (A*) search over lazily generated state
// graphs with non-negative integer edge costs.
//
// A* finds one minimum-cost route from any of a set of start states to the
// first state whose goal test holds. The frontier is ordered by g + h, where
// g is the accumulated cost and h the state's heuristic estimate of the cost
// still to go.
//
// Guarantees:
//
//   - With an admissible and consistent heuristic the returned cost is optimal.
//     A heuristic of zero degrades to uniform-cost search.
//   - A state is expanded at most once (closed set). Stale frontier entries are
//     skipped when popped ("lazy decrease-key").
//   - Ties in g + h are broken by insertion order, so identical inputs always
//     produce identical routes.
//   - An unreachable goal is reported through Result.Found == false, never as
//     an error and never as a panic.
//
// Multi-source: every start state is seeded at cost 0 as its own route root.
// Duplicate start states collapse into one.
//
// Complexity:
//
//   - Time:  O((V + E) log E) in the explored part of the graph.
//   - Space: O(V + E) for the best-cost map, predecessor map and frontier.
//
// Errors (sentinel):
//
//   - ErrNoStart:       no start state supplied.
//   - ErrNegativeCost:  a successor edge with negative cost was generated.
//   - ErrBadMaxCost:    (panic) WithMaxCost called with a negative bound.
//
// Example:
//
//	res, err := astar.Solve([]Tile{start})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no route")
//	}
//	fmt.Println(res.Cost, len(res.Route))
package astar
