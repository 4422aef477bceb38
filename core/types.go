package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeCost indicates a negative edge cost or heuristic value.
	ErrNegativeCost = errors.New("core: negative cost")
)

// arc is one stored half-edge.
type arc struct {
	to   string
	cost int64
}

// Graph is an explicit weighted graph.
//
// out[u] lists edges leaving u, in[v] lists edges entering v, both in
// insertion order. Undirected edges are stored in both directions.
type Graph struct {
	mu sync.RWMutex

	directed bool

	vertices  map[string]struct{}
	out       map[string][]arc
	in        map[string][]arc
	heuristic map[string]int64
	goals     map[string]struct{}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (true) or two-way (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NewGraph creates an empty graph. By default edges are undirected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		out:       make(map[string][]arc),
		in:        make(map[string][]arc),
		heuristic: make(map[string]int64),
		goals:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
