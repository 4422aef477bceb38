// Package state defines the contract that caller-defined search states must
// satisfy to be explored by the astar, dijkstra and optimal packages.
//
// What:
//
//   - A state is any comparable Go value. Value equality is state identity and
//     the map key derived from the value is its stable hash, so two states built
//     along different routes collapse into one search node.
//   - Successors enumerates weighted moves lazily; the graph is never stored and
//     may be infinite or cyclic. Revisit suppression is the solver's job.
//   - Goal adds the goal test and an admissible cost-to-go estimate used by A*.
//   - Reversible adds Predecessors, the exact inverse of Successors, which the
//     optimal package needs to search backward from goal states.
//
// Shared read-only context (walls, bounds, the goal position) is carried as a
// pointer field inside the state. Pointers compare by address, so every state
// built over the same context compares equal exactly when its own fields do.
//
// Contract (not checked by the solvers):
//
//   - Edge costs are non-negative.
//   - Heuristic never overestimates the remaining cost and never drops by more
//     than the cost of an edge (consistency).
//   - Predecessors is the inverse of Successors: same edges, same costs, reversed.
//     VerifyInverse checks the last rule over a finite sample of states and is
//     meant to be called from the caller's tests.
//
// Complexity of VerifyInverse: O(Σ deg(s)·deg(t)) over the sampled states.
package state
