// File: methods_edges.go
// Role: Edge insertion (overwrite and keep-minimum) and edge queries.
// Determinism:
//   - Neighbors() orders by destination; Edges() orders by (From, To).
// Concurrency:
//   - Writers take mu.Lock; readers take mu.RLock.

package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SetEdge stores the edge from → to with weight w, replacing any existing weight.
// Both endpoints become known stations.
//
// Errors:
//   - ErrNegativeWeight if w < 0 (the graph is left unchanged).
//
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(from, to int, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edgeSet(from)[to] = w
	g.stations[to] = struct{}{}

	return nil
}

// KeepMinEdge inserts the edge from → to with weight w if no such edge exists,
// or lowers the stored weight to w when w is strictly smaller. Equal or larger
// weights leave the graph untouched. Both endpoints become known stations.
//
// Returns true if the stored weight changed.
//
// Errors:
//   - ErrNegativeWeight if w < 0 (the graph is left unchanged).
//
// Complexity: O(1) amortized.
func (g *Graph) KeepMinEdge(from, to int, w int64) (bool, error) {
	if w < 0 {
		return false, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	edges := g.edgeSet(from)
	g.stations[to] = struct{}{}
	if cur, ok := edges[to]; ok && cur <= w {
		return false, nil
	}
	edges[to] = w

	return true, nil
}

// Weight returns the weight of the edge from → to and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to int) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// HasEdge reports whether the edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Neighbors returns the outgoing edges of id ordered by destination.
// Unknown and destination-only stations yield an empty slice.
// Complexity: O(d log d), d = out-degree of id.
func (g *Graph) Neighbors(id int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.adjacency[id]
	out := make([]Edge, 0, len(edges))
	for _, to := range sortedKeys(edges) {
		out = append(out, Edge{From: id, To: to, Weight: edges[to]})
	}

	return out
}

// Edges returns every edge ordered by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCountLocked())
	for from, edges := range g.adjacency {
		for to, w := range edges {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}

		return a.To - b.To
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCountLocked()
}

// edgeSet returns the edge set of from, creating it and registering from as a
// known station on first use. Caller must hold mu for writing.
func (g *Graph) edgeSet(from int) map[int]int64 {
	edges, ok := g.adjacency[from]
	if !ok {
		edges = make(map[int]int64)
		g.adjacency[from] = edges
		g.stations[from] = struct{}{}
	}

	return edges
}

// edgeCountLocked counts edges; caller must hold mu.
func (g *Graph) edgeCountLocked() int {
	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}

	return n
}
