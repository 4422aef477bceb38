package dijkstra_test

import (
	"fmt"
	"testing"

	"lukechampine.com/frand"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// buildRandom returns a directed graph with n vertices and about m random edges.
func buildRandom(n, m int) *core.Graph {
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprint(i))
	}
	for e := 0; e < m; e++ {
		_ = g.AddEdge(fmt.Sprint(rng.Intn(n)), fmt.Sprint(rng.Intn(n)), int64(1+rng.Intn(100)))
	}
	return g
}

// BenchmarkDistances_Sparse runs on 2k vertices and 10k edges.
func BenchmarkDistances_Sparse(b *testing.B) {
	g := buildRandom(2000, 10000)
	src := []core.Vertex{g.MustVertex("0")}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Distances(src, dijkstra.WithCapacity(2000)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDistances_ReturnPath adds predecessor bookkeeping.
func BenchmarkDistances_ReturnPath(b *testing.B) {
	g := buildRandom(2000, 10000)
	src := []core.Vertex{g.MustVertex("0")}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Distances(src, dijkstra.WithReturnPath()); err != nil {
			b.Fatal(err)
		}
	}
}
