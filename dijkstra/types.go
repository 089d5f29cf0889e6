// Package dijkstra defines options, strategies, the Path result type and
// sentinel errors for the route search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStationNotFound indicates that Tree was started from a station unknown to the graph.
	ErrStationNotFound = errors.New("dijkstra: start station not found in graph")

	// ErrUnknownStrategy indicates an unsupported selection strategy name.
	ErrUnknownStrategy = errors.New("dijkstra: unknown selection strategy")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Strategy selects how the next station to settle is found.
type Strategy int

const (
	// StrategyLinearScan scans all unsettled stations each round.
	StrategyLinearScan Strategy = iota

	// StrategyHeap keeps frontier stations in a binary min-heap.
	StrategyHeap
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLinearScan:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "linear"/"scan" and "heap"/"pq" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "scan", "":
		return StrategyLinearScan, nil
	case "heap", "pq":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Options configures a search.
//
// Strategy    – selection strategy, StrategyLinearScan by default.
// MaxDistance – stations farther than this are never settled. Default math.MaxInt64.
type Options struct {
	Strategy    Strategy
	MaxDistance int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns linear-scan selection with no distance cap.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyLinearScan,
		MaxDistance: math.MaxInt64,
	}
}

// WithStrategy selects the frontier strategy. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyLinearScan && s != StrategyHeap {
		panic(fmt.Sprintf("dijkstra: WithStrategy(%s)", s))
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance caps the explored distance: a route heavier than max is
// reported as not found. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// Path is the result of ShortestPath.
//
// Stations lists the route from start to finish inclusive; it is empty when no
// route exists. Weight is the sum of edge weights along the route.
type Path struct {
	Stations []int
	Weight   int64
}

// Found reports whether a route exists.
func (p Path) Found() bool {
	return len(p.Stations) > 0
}

// Hops returns the number of edges on the route (0 when not found).
func (p Path) Hops() int {
	if len(p.Stations) == 0 {
		return 0
	}

	return len(p.Stations) - 1
}

// String renders the route as "1909 → 1917 → 1929 (weight 20)" or "no route".
func (p Path) String() string {
	if !p.Found() {
		return "no route"
	}
	parts := make([]string, len(p.Stations))
	for i, id := range p.Stations {
		parts[i] = strconv.Itoa(id)
	}

	return fmt.Sprintf("%s (weight %d)", strings.Join(parts, " → "), p.Weight)
}
