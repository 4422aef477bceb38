// Package dijkstra provides the all-distances solver: a multi-source
// uniform-cost search that maps every state reachable from a source set to
// its minimum cost.
//
// Overview:
//
//   - The graph is never materialized. States generate their outgoing edges on
//     demand (state.State), and the solver discovers the reachable component
//     as it goes; cycles are handled by revisit suppression.
//   - Several sources may be given; each is a root at distance 0. Passing every
//     cell of a region as a source turns the search into a flood fill.
//   - Running over state.Backward (see DistancesFunc) computes the distance from
//     every state to the source set instead of from it.
//
// When to use:
//
//   - "Distance from X to everywhere" queries: reachability, flood fills,
//     racetrack-style lookups of the cost between any two cells of a route.
//   - As one half of optimal-set reconstruction (package optimal), which joins a
//     forward and a backward distance map.
//   - Prefer package astar when only one goal matters and a heuristic exists.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor map; PathTo rebuilds a route.
//   - MaxDistance: bounds exploration; farther states are simply absent.
//   - InfEdgeThreshold: treats any edge with cost ≥ threshold as impassable.
//   - Deterministic: equal-distance ties are broken by insertion order, so the
//     predecessor map is identical across runs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each state is finalized once (V pops that do work).
//   - Each improving relaxation pushes one entry (up to E pushes).
//   - Space: O(V + E) for the maps and the lazy frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        the source set was empty.
//   - ErrNegativeCost:    an edge with a negative cost was relaxed; the error is
//     wrapped with the offending edge.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold with zero or a negative value.
//
// Unreachable states are not an error: they are absent from the DistanceMap.
//
// Thread safety:
//
//   - Every call owns its maps and frontier. Concurrent calls are safe as long
//     as the states' Successors methods are safe for concurrent reads.
package dijkstra
