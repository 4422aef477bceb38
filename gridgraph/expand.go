package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/state"
)

// Breach finds a route from `from` to `to` that crosses the fewest cells
// failing passable, and returns that count with the route (both endpoints
// included).
//
// Behavior:
//  1. Validate both positions.
//  2. Dijkstra from `from` with 0–1 costs:
//     • Moving into a passable cell   → cost 0
//     • Moving into a blocked cell    → cost 1
//  3. Reconstruct the route via the predecessor map.
//
// Neighbors follow g.Conn. The starting cell itself is never counted.
//
// Complexity: O(W·H·d·log(W·H)).
// Memory:     O(W·H) for distances and predecessors.
func (g *Grid) Breach(from, to Position, passable func(rune) bool) (int64, []Position, error) {
	for _, p := range []Position{from, to} {
		if !g.InBounds(p) {
			return 0, nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	expand := func(p Position) []state.Edge[Position] {
		nbrs := g.Neighbors(p)
		out := make([]state.Edge[Position], 0, len(nbrs))
		for _, q := range nbrs {
			var c int64
			if !passable(g.At(q)) {
				c = 1
			}
			out = append(out, state.Edge[Position]{Cost: c, To: q})
		}
		return out
	}

	dist, prev, err := dijkstra.DistancesFunc([]Position{from}, expand,
		dijkstra.WithReturnPath(),
		dijkstra.WithCapacity(g.Width*g.Height),
	)
	if err != nil {
		return 0, nil, err
	}
	route, ok := dijkstra.PathTo(dist, prev, to)
	if !ok {
		return 0, nil, ErrNoPath
	}

	return dist[to], route, nil
}
