// SPDX-License-Identifier: MIT
// Package: tripgraph/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Defaults are deterministic: weight = ByCost.

package builder

import "fmt"

// BuilderOption customizes Build by mutating a builderConfig before the pass.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// builderConfig is the single source of truth for Build knobs.
type builderConfig struct {
	dimension Dimension // informational; reported in wrapped errors
	weightFn  WeightFn
}

// newBuilderConfig returns the defaults with opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		dimension: DimensionCost,
		weightFn:  ByCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDimension selects one of the predefined weight dimensions.
// Panics on an unknown dimension.
// Complexity: O(1).
func WithDimension(d Dimension) BuilderOption {
	fn := d.WeightFn()
	if fn == nil {
		panic(fmt.Sprintf("builder: WithDimension(%s)", d))
	}

	return func(c *builderConfig) {
		c.dimension = d
		c.weightFn = fn
	}
}

// WithWeightFn overrides the per-trip weight function. Panics on nil.
// Complexity: O(1).
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
