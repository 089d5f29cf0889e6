// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates an attempt to store an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one directed connection From → To with a non-negative Weight.
// Edges returned by the Graph are copies; mutating them does not affect the graph.
type Edge struct {
	// From is the origin station ID.
	From int

	// To is the destination station ID.
	To int

	// Weight is the cost of traversing the edge (price or duration, caller-defined).
	Weight int64
}

// Graph is the in-memory weighted directed station graph.
//
// stations holds every known station (origins, destinations and stations added
// explicitly). adjacency holds an edge set only for stations with outgoing edges.
// mu guards both maps.
type Graph struct {
	mu sync.RWMutex

	// stations is the set of known station IDs.
	stations map[int]struct{}

	// adjacency[from][to] = weight
	adjacency map[int]map[int]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		stations:  make(map[int]struct{}),
		adjacency: make(map[int]map[int]int64),
	}
}
