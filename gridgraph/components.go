package gridgraph

import (
	"sort"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/state"
)

// Regions finds all maximal groups of 4-connected cells that share a symbol.
// Regions are returned in row-major order of their first cell; each region's
// cells are row-major too.
//
// Every region is a flood fill: a single-source dijkstra run whose expander
// only steps onto orthogonal neighbors holding the same symbol.
//
// Time:   O(W·H·log(W·H)).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() []Region {
	seen := make([]bool, g.Width*g.Height)
	var regions []Region

	for _, p := range g.Positions() {
		if seen[g.index(p)] {
			continue
		}
		sym := g.At(p)
		// Unit costs only, so the error is always nil.
		dist, _, _ := dijkstra.DistancesFunc([]Position{p}, g.sameSymbol(sym))
		cells := make([]Position, 0, len(dist))
		for q := range dist {
			seen[g.index(q)] = true
			cells = append(cells, q)
		}
		sortRowMajor(cells)
		regions = append(regions, Region{Symbol: sym, Cells: cells})
	}

	return regions
}

// sameSymbol returns an expander over orthogonal neighbors holding sym.
func (g *Grid) sameSymbol(sym rune) state.Expander[Position] {
	return func(p Position) []state.Edge[Position] {
		var out []state.Edge[Position]
		for _, d := range Cardinals {
			if q := p.Step(d); g.InBounds(q) && g.At(q) == sym {
				out = append(out, state.Edge[Position]{Cost: 1, To: q})
			}
		}
		return out
	}
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Y*g.Width + p.X
}

// Area returns the number of cells in r.
func (r Region) Area() int { return len(r.Cells) }

// Perimeter counts cell edges that border a cell outside r (or the grid edge).
func (r Region) Perimeter() int {
	in := r.set()
	n := 0
	for _, p := range r.Cells {
		for _, d := range Cardinals {
			if _, ok := in[p.Step(d)]; !ok {
				n++
			}
		}
	}
	return n
}

// Sides counts the straight fence segments around r. A polygon has as many
// sides as corners, so each cell contributes its convex and concave corners.
func (r Region) Sides() int {
	in := r.set()
	has := func(p Position) bool { _, ok := in[p]; return ok }
	n := 0
	for _, p := range r.Cells {
		for _, d := range Cardinals {
			e := d.TurnRight()
			a, b := has(p.Step(d)), has(p.Step(e))
			switch {
			case !a && !b:
				n++ // convex
			case a && b && !has(p.Step(d).Step(e)):
				n++ // concave
			}
		}
	}
	return n
}

func (r Region) set() map[Position]struct{} {
	in := make(map[Position]struct{}, len(r.Cells))
	for _, p := range r.Cells {
		in[p] = struct{}{}
	}
	return in
}

func sortRowMajor(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}
