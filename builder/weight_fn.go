package builder

import "github.com/katalvlaran/tripgraph/trip"

// WeightFn maps a trip to the weight of the edge it contributes.
// Implementations must be pure and should return values ≥ 0.
type WeightFn func(t trip.Trip) int64

// ByCost weighs a trip by its price in minor currency units.
// Complexity: O(1).
func ByCost(t trip.Trip) int64 {
	return t.Cost
}

// ByDuration weighs a trip by its travel time in milliseconds,
// day rollover included.
// Complexity: O(1).
func ByDuration(t trip.Trip) int64 {
	return t.TravelTimeMillis()
}
