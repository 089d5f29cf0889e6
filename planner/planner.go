package planner

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/tripgraph/bfs"
	"github.com/katalvlaran/tripgraph/builder"
	"github.com/katalvlaran/tripgraph/core"
	"github.com/katalvlaran/tripgraph/dijkstra"
	"github.com/katalvlaran/tripgraph/trip"
)

// Planner answers route queries over an immutable trip snapshot.
type Planner struct {
	trips    []trip.Trip
	strategy dijkstra.Strategy
	logger   zerolog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithStrategy selects the frontier strategy used by every search.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(p *Planner) {
		p.strategy = s
	}
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Planner) {
		p.logger = l
	}
}

// New returns a Planner over a copy of trips.
func New(trips []trip.Trip, opts ...Option) *Planner {
	p := &Planner{
		trips:    append([]trip.Trip(nil), trips...),
		strategy: dijkstra.StrategyLinearScan,
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Trips returns the number of trips held by the planner.
func (p *Planner) Trips() int {
	return len(p.trips)
}

// Graph builds the collapsed station graph for dim.
func (p *Planner) Graph(dim builder.Dimension) (*core.Graph, error) {
	if dim.WeightFn() == nil {
		return nil, fmt.Errorf("planner: %w: %s", builder.ErrUnknownDimension, dim)
	}

	return builder.Build(p.trips, builder.WithDimension(dim))
}

// Route finds the minimum-weight route from → to under dim.
// A missing route is reported through Path.Found, not through err.
func (p *Planner) Route(dim builder.Dimension, from, to int) (dijkstra.Path, error) {
	g, err := p.Graph(dim)
	if err != nil {
		return dijkstra.Path{}, err
	}

	path, err := dijkstra.ShortestPath(g, from, to, dijkstra.WithStrategy(p.strategy))
	if err != nil {
		return dijkstra.Path{}, fmt.Errorf("planner: %s route %d→%d: %w", dim, from, to, err)
	}

	p.logger.Debug().
		Str("dimension", dim.String()).
		Str("strategy", p.strategy.String()).
		Int("from", from).
		Int("to", to).
		Int("stations", g.StationCount()).
		Int("edges", g.EdgeCount()).
		Bool("found", path.Found()).
		Int("hops", path.Hops()).
		Int64("weight", path.Weight).
		Msg("Route computed")

	return path, nil
}

// Cheapest is Route with builder.DimensionCost.
func (p *Planner) Cheapest(from, to int) (dijkstra.Path, error) {
	return p.Route(builder.DimensionCost, from, to)
}

// Fastest is Route with builder.DimensionDuration.
func (p *Planner) Fastest(from, to int) (dijkstra.Path, error) {
	return p.Route(builder.DimensionDuration, from, to)
}

// Reachable lists the stations reachable from from, with the number of trips
// needed to reach each. maxTrips > 0 bounds the search depth.
// The station set does not depend on the weight dimension.
func (p *Planner) Reachable(from, maxTrips int) (*bfs.Result, error) {
	g, err := p.Graph(builder.DimensionCost)
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(g, from, bfs.WithMaxDepth(maxTrips))
	if err != nil {
		return nil, fmt.Errorf("planner: reachable from %d: %w", from, err)
	}

	return res, nil
}

// FewestTrips returns the route from → to that uses the fewest trips, ignoring
// price and duration. It returns nil when either station is unknown or to is
// unreachable.
func (p *Planner) FewestTrips(from, to int) ([]int, error) {
	res, err := p.Reachable(from, 0)
	if errors.Is(err, bfs.ErrStartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	path := res.PathTo(to)
	p.logger.Debug().
		Int("from", from).
		Int("to", to).
		Int("reached", len(res.Order)).
		Bool("found", path != nil).
		Msg("Fewest-trips route computed")

	return path, nil
}
