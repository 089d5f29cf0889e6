// Package planner answers "cheapest" and "fastest" route queries over a fixed
// set of trips.
//
// Every query builds a fresh graph for its weight dimension and hands it to the
// search explicitly; no graph is shared or mutated between queries:
//
//	trips ──builder.Build(dimension)──► *core.Graph ──dijkstra.ShortestPath──► Path
//
// Reachable and FewestTrips walk the same graph breadth-first and count trips
// instead of summing weights.
//
// A Planner holds its own copy of the trips, so later changes to the caller's
// slice do not leak into answers.
package planner
