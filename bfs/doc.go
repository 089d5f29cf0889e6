// Package bfs walks a station graph breadth-first, counting trips instead of
// summing weights.
//
// What
//
//   - Visits stations in non-decreasing number of trips from a start station.
//   - Returns a Result with the visit Order, the Depth of every reached
//     station and the Parent link of every station except the start.
//   - Result.PathTo rebuilds the route with the fewest trips.
//   - Honors a MaxDepth limit, a cancellation context and an OnVisit hook.
//
// Determinism
//
//	core.Graph.Neighbors returns edges sorted by destination, and BFS enqueues
//	them in that order. Among routes with equally few trips, PathTo returns the
//	one found first in that order.
//
// Complexity
//
//   - Time:   O(V + E log E) including neighbor sorting.
//   - Memory: O(V).
package bfs
