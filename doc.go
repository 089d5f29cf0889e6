// Package tripgraph finds the cheapest and the fastest route between two
// stations of a trip timetable.
//
// Every trip is a direct ride between two stations with a price and a
// departure and arrival time of day. Route queries run in three steps:
//
//	timetable.Read ──► []trip.Trip ──builder.Build(dimension)──► *core.Graph ──dijkstra.ShortestPath──► Path
//
// Packages:
//
//	trip/      - the Trip record and its day-rollover travel time
//	core/      - thread-safe directed graph of stations with int64 weights
//	builder/   - collapses trips into one edge per station pair (keep-min)
//	dijkstra/  - single-source shortest paths, linear-scan or heap frontier
//	bfs/       - breadth-first reachability and fewest-trip routes
//	timetable/ - semicolon-delimited trip file reader
//	planner/   - per-dimension route queries over a trip snapshot
//	config/    - YAML settings with TRIPGRAPH_* environment overrides
//
// The tripgraph binary lives in cmd/tripgraph:
//
//	go install github.com/katalvlaran/tripgraph/cmd/tripgraph@latest
//	tripgraph route --data test_task_data.csv --from 1909 --to 1929
package tripgraph
