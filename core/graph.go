package core

import (
	"fmt"
	"sort"
)

// AddVertex adds id if absent. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge adds an edge from→to with the given cost, creating missing
// endpoints. In an undirected graph the reverse edge is added too, except for
// self-loops which are stored once. Parallel edges are kept.
func (g *Graph) AddEdge(from, to string, cost int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 {
		return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNegativeCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.link(from, to, cost)
	if !g.directed && from != to {
		g.link(to, from, cost)
	}

	return nil
}

// link stores one directed half-edge. Caller holds the write lock.
func (g *Graph) link(from, to string, cost int64) {
	g.out[from] = append(g.out[from], arc{to: to, cost: cost})
	g.in[to] = append(g.in[to], arc{to: from, cost: cost})
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// SetHeuristic stores the cost-to-go estimate returned by Vertex(id).Heuristic.
// Vertices without an estimate report zero.
func (g *Graph) SetHeuristic(id string, h int64) error {
	if h < 0 {
		return fmt.Errorf("%w: heuristic of %s=%d", ErrNegativeCost, id, h)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.heuristic[id] = h

	return nil
}

// MarkGoal flags the given vertices as goals for Vertex.IsEnd.
func (g *Graph) MarkGoal(ids ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range ids {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	for _, id := range ids {
		g.goals[id] = struct{}{}
	}

	return nil
}

// Vertex returns the search handle of id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return Vertex{g: g, ID: id}, nil
}

// MustVertex is Vertex for IDs known to exist; it panics otherwise.
func (g *Graph) MustVertex(id string) Vertex {
	v, err := g.Vertex(id)
	if err != nil {
		panic(err)
	}
	return v
}

// AllVertices returns handles for every vertex, sorted by ID.
func (g *Graph) AllVertices() []Vertex {
	ids := g.Vertices()
	vs := make([]Vertex, len(ids))
	for i, id := range ids {
		vs[i] = Vertex{g: g, ID: id}
	}
	return vs
}
