package builder

import (
	"fmt"

	"github.com/katalvlaran/tripgraph/core"
	"github.com/katalvlaran/tripgraph/trip"
)

// Build reduces trips into a weighted directed graph under the configured
// weight function, keeping the minimum weight for every (From, To) pair.
//
// Steps:
//  1. Resolve options (default: DimensionCost).
//  2. For each trip compute w = weightFn(trip); reject w < 0.
//  3. Insert From → To with w, or lower the existing weight when w is strictly smaller.
//
// Errors:
//   - ErrNegativeWeight wrapped with the trip and dimension; no graph is returned.
//
// Complexity: O(T) time, O(V + E) space.
func Build(trips []trip.Trip, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()

	var w int64
	for i := range trips {
		w = cfg.weightFn(trips[i])
		if w < 0 {
			return nil, fmt.Errorf("%w: %s weight=%d for trip #%d (%s)",
				ErrNegativeWeight, cfg.dimension, w, i, trips[i])
		}
		// w ≥ 0 here, so KeepMinEdge cannot fail.
		if _, err := g.KeepMinEdge(trips[i].From, trips[i].To, w); err != nil {
			return nil, fmt.Errorf("builder: trip #%d: %w", i, err)
		}
	}

	return g, nil
}
