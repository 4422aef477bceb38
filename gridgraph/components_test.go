// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := Parse(text, DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

// TestRegions_Simple tests Regions on the small garden map.
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
//
// Expected: 5 regions A, B, C, D, E in row-major order of first cell.
func TestRegions_Simple(t *testing.T) {
	g := mustParse(t, "AAAA\nBBCD\nBBCC\nEEEC")
	regions := g.Regions()

	type measure struct {
		sym                     rune
		area, perimeter, sides int
	}
	var got []measure
	for _, r := range regions {
		got = append(got, measure{r.Symbol, r.Area(), r.Perimeter(), r.Sides()})
	}
	want := []measure{
		{'A', 4, 10, 4},
		{'B', 4, 8, 4},
		{'C', 4, 10, 8},
		{'D', 1, 4, 4},
		{'E', 3, 8, 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("regions = %v; want %v", got, want)
	}

	wantC := []Position{{2, 1}, {2, 2}, {3, 2}, {3, 3}}
	if !reflect.DeepEqual(regions[2].Cells, wantC) {
		t.Errorf("C cells = %v; want %v", regions[2].Cells, wantC)
	}
}

// TestRegions_Enclosed: one O region surrounds four single-cell X regions.
//
//	OOOOO
//	OXOXO
//	OOOOO
//	OXOXO
//	OOOOO
func TestRegions_Enclosed(t *testing.T) {
	g := mustParse(t, "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO")
	regions := g.Regions()
	if len(regions) != 5 {
		t.Fatalf("got %d regions; want 5", len(regions))
	}
	o := regions[0]
	if o.Symbol != 'O' || o.Area() != 21 || o.Perimeter() != 36 || o.Sides() != 20 {
		t.Errorf("O region: area=%d perimeter=%d sides=%d", o.Area(), o.Perimeter(), o.Sides())
	}
}

// TestRegions_SameSymbolApart: equal symbols that do not touch are separate regions.
func TestRegions_SameSymbolApart(t *testing.T) {
	g := mustParse(t, "A.A")
	regions := g.Regions()
	if len(regions) != 3 {
		t.Fatalf("got %d regions; want 3", len(regions))
	}
	if regions[0].Symbol != 'A' || regions[2].Symbol != 'A' {
		t.Errorf("unexpected symbols %q %q", regions[0].Symbol, regions[2].Symbol)
	}
}

// TestRegions_DiagonalsDoNotJoin: regions are 4-connected even under Conn8.
func TestRegions_DiagonalsDoNotJoin(t *testing.T) {
	g, err := Parse("X.\n.X", GridOptions{Conn: Conn8})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.Regions()); n != 4 {
		t.Errorf("got %d regions; want 4", n)
	}
}

// TestRegions_Concave checks side counting on a region with inner corners.
//
//	AAAAAA
//	AAABBA
//	AAABBA
//	ABBAAA
//	ABBAAA
//	AAAAAA
func TestRegions_Concave(t *testing.T) {
	g := mustParse(t, "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA")
	total := 0
	for _, r := range g.Regions() {
		total += r.Area() * r.Sides()
	}
	if total != 368 {
		t.Errorf("area×sides total = %d; want 368", total)
	}
}
