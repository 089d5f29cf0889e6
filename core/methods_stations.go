// File: methods_stations.go
// Role: Station registration and station-level queries.
// Determinism:
//   - Stations() and Origins() return ascending IDs.
// Concurrency:
//   - Writers take mu.Lock; readers take mu.RLock.

package core

import (
	"golang.org/x/exp/slices"
)

// AddStation registers id as a known station without adding any edge.
// Registering an already known station is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddStation(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stations[id] = struct{}{}
}

// HasStation reports whether id is known to the graph, either as an origin,
// as a destination or through AddStation.
// Complexity: O(1).
func (g *Graph) HasStation(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.stations[id]

	return ok
}

// Stations returns every known station ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) Stations() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.stations)
}

// Origins returns the IDs of stations that own an edge set, in ascending order.
// Destination-only stations are not included.
// Complexity: O(V log V).
func (g *Graph) Origins() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adjacency)
}

// StationCount returns the number of known stations.
// Complexity: O(1).
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.stations)
}

// sortedKeys collects the keys of m in ascending order.
func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
