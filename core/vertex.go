package core

import "github.com/katalvlaran/lvsearch/state"

// Vertex is a search state backed by a Graph. Two handles are equal when they
// refer to the same graph and the same ID.
type Vertex struct {
	g  *Graph
	ID string
}

// Successors returns the edges leaving v, in insertion order.
func (v Vertex) Successors() []state.Edge[Vertex] {
	v.g.mu.RLock()
	defer v.g.mu.RUnlock()

	return v.edges(v.g.out[v.ID])
}

// Predecessors returns the edges entering v, each pointing back at its
// source, in insertion order.
func (v Vertex) Predecessors() []state.Edge[Vertex] {
	v.g.mu.RLock()
	defer v.g.mu.RUnlock()

	return v.edges(v.g.in[v.ID])
}

func (v Vertex) edges(arcs []arc) []state.Edge[Vertex] {
	edges := make([]state.Edge[Vertex], len(arcs))
	for i, a := range arcs {
		edges[i] = state.Edge[Vertex]{Cost: a.cost, To: Vertex{g: v.g, ID: a.to}}
	}
	return edges
}

// IsEnd reports whether v was marked with MarkGoal.
func (v Vertex) IsEnd() bool {
	v.g.mu.RLock()
	defer v.g.mu.RUnlock()
	_, ok := v.g.goals[v.ID]

	return ok
}

// Heuristic returns the value stored with SetHeuristic, or zero.
func (v Vertex) Heuristic() int64 {
	v.g.mu.RLock()
	defer v.g.mu.RUnlock()

	return v.g.heuristic[v.ID]
}

// String returns the vertex ID.
func (v Vertex) String() string { return v.ID }
