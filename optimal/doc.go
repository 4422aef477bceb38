// Package optimal finds every state that lies on at least one minimum-cost
// route between a start region and a goal region.
//
// Instead of enumerating optimal routes (there may be exponentially many), it
// runs the all-distances solver twice:
//
//  1. forward from the start states, giving f(s), the cost from the starts to s;
//  2. backward from the goal states over Predecessors, giving b(s), the cost
//     from s to the nearest goal.
//
// With best = min over goals of f(goal), a state s belongs to the set iff
// f(s) + b(s) == best.
//
// The backward search is only correct when Predecessors is the exact inverse
// of Successors. WithInverseCheck verifies that pairing over every state the
// forward search expanded and fails with state.ErrNotInverse otherwise.
//
// Complexity: two Dijkstra runs, O((V + E) log V), plus O(V) for the join.
package optimal
