package state

// VerifyInverse checks that Predecessors mirrors Successors for every state in
// states. It returns nil or an *InverseError[S] describing the first mismatch.
func VerifyInverse[S Reversible[S]](states []S) error {
	return VerifyInverseFunc(states, Forward[S](), Backward[S]())
}

// VerifyInverseFunc is VerifyInverse over explicit expanders.
//
// For each sampled state s, in order:
//  1. every forward edge s→t of cost c must appear in backward(t) as (c, s),
//     with the same multiplicity;
//  2. every backward edge (c, t) of s must appear in forward(t) as (c, s),
//     with the same multiplicity.
//
// Edges are checked in the order the expanders return them, so the reported
// mismatch is deterministic.
func VerifyInverseFunc[S comparable](states []S, forward, backward Expander[S]) error {
	for _, s := range states {
		// 1) successors of s must be mirrored
		out := forward(s)
		outCounts := countEdges(out)
		for _, e := range out {
			if countEdges(backward(e.To))[Edge[S]{Cost: e.Cost, To: s}] != outCounts[e] {
				return &InverseError[S]{From: s, To: e.To, Cost: e.Cost, Missing: SideBackward}
			}
		}

		// 2) predecessors of s must be mirrored
		in := backward(s)
		inCounts := countEdges(in)
		for _, e := range in {
			if countEdges(forward(e.To))[Edge[S]{Cost: e.Cost, To: s}] != inCounts[e] {
				return &InverseError[S]{From: e.To, To: s, Cost: e.Cost, Missing: SideForward}
			}
		}
	}

	return nil
}

// countEdges tallies edges by (cost, target).
func countEdges[S comparable](edges []Edge[S]) map[Edge[S]]int {
	counts := make(map[Edge[S]]int, len(edges))
	for _, e := range edges {
		counts[e]++
	}
	return counts
}
