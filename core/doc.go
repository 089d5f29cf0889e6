// Package core defines the weighted directed station graph used by the route
// search: a mapping from station ID to its outgoing edges, each edge carrying a
// non-negative int64 weight.
//
// What is a station graph?
//
//	        10          10
//	 1909 ──────► 1917 ──────► 1929
//	   │                         ▲
//	   └────────── 30 ───────────┘
//
//	Stations are integer IDs. Edges are directed and unique per ordered pair
//	(from, to): parallel trips between the same two stations are collapsed by
//	the builder package before they get here.
//
// Known stations:
//
//   - Origins hold an edge set (adjacency key).
//   - Destination-only stations are not adjacency keys, yet they are still known
//     and usable as search endpoints; their edge set is implicitly empty.
//   - AddStation registers a station with no edges at all.
//
// Weights:
//
//	Weights must be ≥ 0; SetEdge and KeepMinEdge reject negative values with
//	ErrNegativeWeight. What a weight means (price in minor units, travel time in
//	milliseconds) is decided by the caller building the graph.
//
// Concurrency:
//
//	All methods are safe for concurrent use (one sync.RWMutex guards both maps).
//	The intended lifecycle is build once, then share the graph as a read-only
//	snapshot among any number of searches.
//
// Determinism:
//
//	Stations, Origins, Neighbors and Edges return results in ascending ID order,
//	so algorithms iterating them behave identically on every run.
//
// Complexity:
//
//   - AddStation, SetEdge, KeepMinEdge, Weight, HasStation: O(1) amortized.
//   - Stations, Origins: O(V log V). Neighbors: O(d log d). Edges: O(E log E).
//   - Clone: O(V + E).
package core
