// Package builder reduces a collection of trip.Trip records into a weighted
// directed core.Graph.
//
// Each trip contributes one candidate edge From → To whose weight is selected by
// a WeightFn (price or travel time). Several departures between the same pair
// of stations collapse into one edge carrying the minimum weight:
//
//	trips:   1→2 cost 50   1→2 cost 30   2→3 cost 10
//	graph:   1→2 (30)      2→3 (10)
//
// Guarantees:
//
//   - Single pass over the input; the input slice is never modified.
//   - Order independence: min is commutative, so any permutation of the same
//     trips produces the same graph.
//   - Every origin and destination becomes a known station.
//   - An empty trip collection yields a graph with no stations.
//
// Configuration (functional options, applied left to right):
//
//	WithDimension(DimensionCost)      – weight = Trip.Cost (default)
//	WithDimension(DimensionDuration)  – weight = Trip.TravelTimeMillis()
//	WithWeightFn(fn)                  – any custom non-negative weight
//
// Option constructors panic on programmer errors (nil fn, unknown dimension);
// Build itself never panics.
//
// Errors:
//
//	ErrNegativeWeight – the weight function produced a value < 0 for some trip
//	                    (for example the same-hour wrap of the rollover rule).
//	                    Wrapped with the offending trip.
//	ErrUnknownDimension – ParseDimension received an unsupported name.
//
// Complexity: O(T) time for T trips, O(V + E) space.
package builder
