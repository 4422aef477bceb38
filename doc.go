// Package lvsearch is a generic weighted state-space search toolkit.
//
// Callers describe a search space by implementing a small state contract
// and get three engines over it:
//
//	state/     the contract: Successors, IsEnd, Heuristic, Predecessors
//	frontier/  min-priority queue with FIFO ties and lazy decrease-key
//	astar/     cheapest route from any start to any goal state
//	dijkstra/  exact distance from a source set to every reachable state
//	optimal/   every state lying on at least one cheapest route
//
// Supporting packages:
//
//	core/      explicit in-memory graph whose vertices satisfy the contract
//	gridgraph/ 2D character grids: positions, directions, regions
//	render/    lipgloss drawing of grids and routes
//	puzzle/, puzzles/, runner/, config/ the lvsearch command
//
// Quick ASCII example:
//
//	S──1──A──1──G
//	│           │
//	1─────B─────3
//
// A* from S to G returns cost 2 via A; optimal.States returns {S, A, G}.
//
// All engines are deterministic: equal priorities pop in insertion order and
// successors are expanded in the order the state returns them.
package lvsearch
