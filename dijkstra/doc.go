// Package dijkstra finds minimum-weight routes between two stations of a
// core.Graph using Dijkstra's algorithm.
//
// Overview:
//
//   - ShortestPath(g, start, finish) returns the stations of a minimum-weight
//     route, start and finish included, together with its total weight.
//   - Tree(g, start) returns distances and predecessors for every station
//     reachable from start.
//   - Weights are non-negative by construction (core.Graph rejects negative
//     weights), which is what makes a settled distance final.
//
// Station states during a search:
//
//	unvisited ──relax──► frontier ──select min──► settled
//
//	  - start begins at distance 0; every other station has no distance yet
//	    (an explicit "unreached" state, not a MaxInt sentinel).
//	  - Each round settles the unsettled station with the smallest distance and
//	    relaxes its outgoing edges. A neighbor is updated only when the new
//	    distance is strictly smaller, so on ties the earlier predecessor stays.
//	  - The search succeeds as soon as finish is settled and fails as soon as the
//	    smallest remaining station is unreached.
//
// Selection strategies (WithStrategy):
//
//	StrategyLinearScan – scans every unsettled known station each round,
//	                     O(V²) overall. Default.
//	StrategyHeap       – binary heap with lazy decrease-key, O((V + E) log V).
//
//	Both order candidates by (distance, station ID) and therefore settle
//	stations in the same order and return identical routes.
//
// No route is a normal outcome, not an error:
//
//   - start or finish unknown to the graph  → Path{} (Found() == false)
//   - finish unreachable from start         → Path{}
//   - start == finish (known station)       → Path{Stations: [start], Weight: 0}
//
// Errors (sentinel):
//
//	ErrNilGraph         – a nil *core.Graph was passed.
//	ErrStationNotFound  – Tree was asked to start from an unknown station.
//	ErrUnknownStrategy  – ParseStrategy received an unsupported name.
//
// Concurrency:
//
//	Every call allocates its own working state and only reads the graph, so a
//	graph snapshot may be shared by any number of searches.
package dijkstra
