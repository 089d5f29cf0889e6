package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tripgraph/dijkstra"
)

// benchmarkStrategy runs a full search across a sparse random network.
func benchmarkStrategy(b *testing.B, s dijkstra.Strategy) {
	const n = 400
	r := rand.New(rand.NewSource(42))
	g := randomGraph(b, r, n, 0.02, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, 0, n-1, dijkstra.WithStrategy(s))
	}
}

func BenchmarkShortestPath_LinearScan(b *testing.B) {
	benchmarkStrategy(b, dijkstra.StrategyLinearScan)
}

func BenchmarkShortestPath_Heap(b *testing.B) {
	benchmarkStrategy(b, dijkstra.StrategyHeap)
}
