// SPDX-License-Identifier: MIT
// Package: tripgraph/builder
//
// types.go - weight dimensions and sentinel errors.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeWeight indicates that a weight function produced a negative weight.
var ErrNegativeWeight = errors.New("builder: negative trip weight")

// ErrUnknownDimension indicates an unsupported weight dimension name.
var ErrUnknownDimension = errors.New("builder: unknown weight dimension")

// Dimension selects the scalar minimised by the route search.
type Dimension int

const (
	// DimensionCost weighs edges by price in minor currency units.
	DimensionCost Dimension = iota

	// DimensionDuration weighs edges by travel time in milliseconds.
	DimensionDuration
)

// String returns the canonical lowercase name of the dimension.
func (d Dimension) String() string {
	switch d {
	case DimensionCost:
		return "cost"
	case DimensionDuration:
		return "time"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// WeightFn returns the weight function associated with d,
// or nil for an unknown dimension.
func (d Dimension) WeightFn() WeightFn {
	switch d {
	case DimensionCost:
		return ByCost
	case DimensionDuration:
		return ByDuration
	default:
		return nil
	}
}

// ParseDimension maps a user-facing name to a Dimension.
// Accepted (case-insensitive): "cost", "price", "time", "duration".
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cost", "price":
		return DimensionCost, nil
	case "time", "duration":
		return DimensionDuration, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
}
