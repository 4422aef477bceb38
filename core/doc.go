// Package core provides a small, explicit, in-memory weighted graph whose
// vertices satisfy the state contract, so hand-built graphs can be searched by
// astar, dijkstra and optimal exactly like lazily generated ones.
//
// What:
//
//   - Graph stores vertices by string ID and edges as (from, to, cost) triples,
//     directed or undirected (default undirected).
//   - Vertex is a comparable handle {graph pointer, ID}; it implements
//     state.Goal and state.Reversible.
//   - Per-vertex heuristic values and goal marks are stored on the graph.
//
// Determinism:
//
//   - Successors and Predecessors return edges in insertion order.
//   - Vertices returns IDs sorted lexicographically.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; reads take a shared lock.
//     Mutating a graph while a search runs over it yields undefined results.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeCost   - an edge or heuristic value is negative.
package core
