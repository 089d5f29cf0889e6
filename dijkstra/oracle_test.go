package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	rcdijkstra "github.com/RyanCarrier/dijkstra"
	"github.com/katalvlaran/tripgraph/core"
	"github.com/katalvlaran/tripgraph/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomGraph builds a graph over stations 0..n-1 with roughly density·n² edges
// and weights in [0, maxW].
func randomGraph(t testing.TB, r *rand.Rand, n int, density float64, maxW int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddStation(i)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < density {
				require.NoError(t, g.SetEdge(u, v, int64(r.Intn(maxW+1))))
			}
		}
	}

	return g
}

// bruteForce enumerates every simple path from start to finish and returns the
// minimum total weight, or ok == false when none exists.
func bruteForce(g *core.Graph, start, finish int) (best int64, ok bool) {
	best = math.MaxInt64
	visited := map[int]bool{start: true}
	var walk func(u int, acc int64)
	walk = func(u int, acc int64) {
		if u == finish {
			if acc < best {
				best, ok = acc, true
			}
			return
		}
		for _, e := range g.Neighbors(u) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			walk(e.To, acc+e.Weight)
			visited[e.To] = false
		}
	}
	walk(start, 0)

	return best, ok
}

// pathWeight sums the edge weights along stations, failing on a missing edge.
func pathWeight(t *testing.T, g *core.Graph, stations []int) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(stations); i++ {
		w, ok := g.Weight(stations[i-1], stations[i])
		require.True(t, ok, "missing edge %d→%d", stations[i-1], stations[i])
		total += w
	}

	return total
}

// TestShortestPath_MatchesBruteForce checks optimality on small random graphs.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 2 + r.Intn(6)
		g := randomGraph(t, r, n, 0.35, 20)
		start, finish := r.Intn(n), r.Intn(n)

		want, ok := bruteForce(g, start, finish)
		for _, s := range strategies {
			p, err := dijkstra.ShortestPath(g, start, finish, dijkstra.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, ok, p.Found(), "round %d %s %d→%d", round, s, start, finish)
			if !ok {
				continue
			}
			assert.Equal(t, want, p.Weight, "round %d %s", round, s)
			assert.Equal(t, want, pathWeight(t, g, p.Stations))
			assert.Equal(t, start, p.Stations[0])
			assert.Equal(t, finish, p.Stations[len(p.Stations)-1])
		}
	}
}

// TestStrategies_Agree checks that both strategies return identical routes,
// tie-breaks included, on graphs with many equal weights.
func TestStrategies_Agree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		n := 5 + r.Intn(30)
		g := randomGraph(t, r, n, 0.2, 3)
		start, finish := r.Intn(n), r.Intn(n)

		scan, err := dijkstra.ShortestPath(g, start, finish, dijkstra.WithStrategy(dijkstra.StrategyLinearScan))
		require.NoError(t, err)
		pq, err := dijkstra.ShortestPath(g, start, finish, dijkstra.WithStrategy(dijkstra.StrategyHeap))
		require.NoError(t, err)
		assert.Equal(t, scan, pq, "round %d %d→%d", round, start, finish)
	}
}

// TestShortestPath_MatchesReferenceLibrary cross-checks distances against
// github.com/RyanCarrier/dijkstra on medium random graphs.
func TestShortestPath_MatchesReferenceLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(1909))
	for round := 0; round < 30; round++ {
		n := 20 + r.Intn(40)
		g := randomGraph(t, r, n, 0.1, 500)

		ref := rcdijkstra.NewGraph()
		for i := 0; i < n; i++ {
			ref.AddVertex(i)
		}
		for _, e := range g.Edges() {
			require.NoError(t, ref.AddArc(e.From, e.To, e.Weight))
		}

		for q := 0; q < 10; q++ {
			start, finish := r.Intn(n), r.Intn(n)
			if start == finish {
				continue
			}
			p, err := dijkstra.ShortestPath(g, start, finish, dijkstra.WithStrategy(dijkstra.StrategyHeap))
			require.NoError(t, err)

			best, refErr := ref.Shortest(start, finish)
			if refErr != nil {
				assert.False(t, p.Found(), "reference found no path %d→%d", start, finish)
				continue
			}
			require.True(t, p.Found(), "reference found a path %d→%d", start, finish)
			assert.Equal(t, best.Distance, p.Weight)
		}
	}
}
