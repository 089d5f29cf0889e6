// Package dijkstra implements the station-to-station route search.
//
// Notes on implementation choices:
//
//   - Distances live in a map; a missing key means "unreached". No sentinel is
//     ever added to a weight, so relaxation cannot overflow near infinity.
//   - A relaxation whose sum would exceed math.MaxInt64 is skipped.
//   - The search stops as soon as finish is settled.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/tripgraph/core"
	"golang.org/x/exp/slices"
)

// ShortestPath returns a minimum-weight route from start to finish in g.
//
// Returns:
//
//   - Path with Stations[0] == start and Stations[len-1] == finish, or the zero
//     Path when start or finish is unknown, finish is unreachable, or the route
//     would exceed MaxDistance.
//   - err: ErrNilGraph only. Absence of a route is not an error.
//
// Complexity:
//
//   - StrategyLinearScan: O(V² + E log d) time, O(V) space.
//   - StrategyHeap:       O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, finish int, opts ...Option) (Path, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph.
	if g == nil {
		return Path{}, ErrNilGraph
	}

	// 3) Unknown endpoints have no route.
	if !g.HasStation(start) || !g.HasStation(finish) {
		return Path{}, nil
	}

	// 4) Run until finish is settled or the frontier is exhausted.
	r := newRunner(g, cfg, start)
	if !r.run(finish, true) {
		return Path{}, nil
	}

	return Path{Stations: r.path(start, finish), Weight: r.dist[finish]}, nil
}

// Tree computes distances from start to every reachable station and the
// predecessor of each reached station (start has none).
//
// Returns:
//
//   - dist: station → minimum distance, reachable stations only.
//   - prev: station → predecessor on a shortest route, start excluded.
//   - err:  ErrNilGraph, or ErrStationNotFound if start is unknown.
//
// Complexity: same as ShortestPath without the early exit.
func Tree(g *core.Graph, start int, opts ...Option) (map[int]int64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasStation(start) {
		return nil, nil, ErrStationNotFound
	}

	// relax never records a distance above MaxDistance, so once the frontier
	// is drained every reached station is settled.
	r := newRunner(g, cfg, start)
	r.run(0, false)

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g       *core.Graph   // read-only within the search
	options Options       // resolved configuration
	dist    map[int]int64 // station → best known distance; absent = unreached
	prev    map[int]int   // station → predecessor on the best known route
	settled map[int]bool  // stations whose distance is final
	front   frontier      // selection strategy
}

// newRunner initializes the working state with start at distance 0.
func newRunner(g *core.Graph, cfg Options, start int) *runner {
	stations := g.Stations()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, len(stations)),
		prev:    make(map[int]int, len(stations)),
		settled: make(map[int]bool, len(stations)),
	}
	r.front = newFrontier(cfg.Strategy, stations, r.dist)
	r.dist[start] = 0
	r.front.push(start, 0)

	return r
}

// run settles stations in (distance, ID) order. With stopAtFinish it returns
// true as soon as finish is settled; otherwise it drains the frontier and
// returns false.
func (r *runner) run(finish int, stopAtFinish bool) bool {
	for {
		u, d, ok := r.front.pop()
		if !ok {
			return false
		}
		// Stale heap entry.
		if r.settled[u] {
			continue
		}
		r.settled[u] = true
		if stopAtFinish && u == finish {
			return true
		}
		r.relax(u, d)
	}
}

// relax lowers the distance of each neighbor of u reachable more cheaply through u.
// Strict "<": on equal distances the earlier predecessor is kept.
func (r *runner) relax(u int, d int64) {
	var nd int64
	for _, e := range r.g.Neighbors(u) {
		if e.Weight > math.MaxInt64-d {
			continue
		}
		nd = d + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, reached := r.dist[e.To]; reached && nd >= cur {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		r.front.push(e.To, nd)
	}
}

// path walks predecessor links back from finish to start and reverses them.
func (r *runner) path(start, finish int) []int {
	stations := []int{finish}
	for v := finish; v != start; {
		v = r.prev[v]
		stations = append(stations, v)
	}
	slices.Reverse(stations)

	return stations
}
