// File: methods_clone.go
// Role: Snapshot copies and summary statistics.
// Concurrency:
//   - Read lock on the source only; the result is a fresh graph.

package core

// Clone returns a deep copy of the graph: known stations and every edge.
// The clone shares no maps with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.stations {
		clone.stations[id] = struct{}{}
	}
	for from, edges := range g.adjacency {
		cp := make(map[int]int64, len(edges))
		for to, w := range edges {
			cp[to] = w
		}
		clone.adjacency[from] = cp
	}

	return clone
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Stations  int   // known stations
	Origins   int   // stations with an edge set
	Edges     int   // directed edges
	MinWeight int64 // smallest edge weight, 0 when there are no edges
	MaxWeight int64 // largest edge weight, 0 when there are no edges
}

// Stats returns a GraphStats snapshot.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Stations: len(g.stations), Origins: len(g.adjacency)}
	for _, edges := range g.adjacency {
		for _, w := range edges {
			if st.Edges == 0 || w < st.MinWeight {
				st.MinWeight = w
			}
			if w > st.MaxWeight {
				st.MaxWeight = w
			}
			st.Edges++
		}
	}

	return st
}
