package builder_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/tripgraph/builder"
	"github.com/katalvlaran/tripgraph/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hm builds a time-of-day offset from hours and minutes.
func hm(h, m int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

func TestBuild_Empty(t *testing.T) {
	g, err := builder.Build(nil)
	require.NoError(t, err)
	assert.Zero(t, g.StationCount())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_CollapseKeepsMinimum_AnyOrder(t *testing.T) {
	a := trip.New("A", 1, 2, 50, hm(8, 0), hm(9, 0))
	b := trip.New("B", 1, 2, 30, hm(10, 0), hm(11, 0))

	for _, trips := range [][]trip.Trip{{a, b}, {b, a}} {
		g, err := builder.Build(trips)
		require.NoError(t, err)

		w, ok := g.Weight(1, 2)
		require.True(t, ok)
		assert.Equal(t, int64(30), w)
		assert.Equal(t, 1, g.EdgeCount())
	}
}

func TestBuild_DurationDimension(t *testing.T) {
	trips := []trip.Trip{
		// 2h, 20m overnight, 30m
		trip.New("slow", 1, 2, 10, hm(8, 0), hm(10, 0)),
		trip.New("fast", 1, 2, 99, hm(23, 50), hm(0, 10)),
		trip.New("other", 2, 3, 10, hm(12, 0), hm(12, 30)),
	}

	g, err := builder.Build(trips, builder.WithDimension(builder.DimensionDuration))
	require.NoError(t, err)

	w, _ := g.Weight(1, 2)
	assert.Equal(t, int64(20*time.Minute/time.Millisecond), w)
	w, _ = g.Weight(2, 3)
	assert.Equal(t, int64(30*time.Minute/time.Millisecond), w)

	// Same trips by cost pick the other departure.
	g, err = builder.Build(trips, builder.WithDimension(builder.DimensionCost))
	require.NoError(t, err)
	w, _ = g.Weight(1, 2)
	assert.Equal(t, int64(10), w)
}

func TestBuild_RegistersDestinations(t *testing.T) {
	g, err := builder.Build([]trip.Trip{trip.New("x", 5, 6, 1, 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, g.Stations())
	assert.Equal(t, []int{5}, g.Origins())
}

func TestBuild_NegativeWeightRejected(t *testing.T) {
	// Same-hour wrap: the rollover rule yields a negative travel time.
	trips := []trip.Trip{trip.New("wrap", 1, 2, 10, hm(10, 50), hm(10, 10))}

	g, err := builder.Build(trips, builder.WithDimension(builder.DimensionDuration))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "wrap")
}

func TestBuild_CustomWeightFn(t *testing.T) {
	hops := func(trip.Trip) int64 { return 1 }
	g, err := builder.Build([]trip.Trip{
		trip.New("a", 1, 2, 500, 0, 0),
		trip.New("b", 2, 3, 700, 0, 0),
	}, builder.WithWeightFn(hops))
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.Equal(t, int64(1), e.Weight)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	trips := []trip.Trip{
		trip.New("a", 1, 2, 5, hm(1, 0), hm(2, 0)),
		trip.New("b", 1, 2, 3, hm(3, 0), hm(4, 0)),
	}
	snapshot := append([]trip.Trip(nil), trips...)

	_, err := builder.Build(trips)
	require.NoError(t, err)
	assert.Equal(t, snapshot, trips)
}

// TestBuild_OrderIndependent shuffles a random trip set and compares edge lists.
func TestBuild_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	trips := make([]trip.Trip, 0, 300)
	for i := 0; i < 300; i++ {
		trips = append(trips, trip.New("t", r.Intn(15), r.Intn(15), int64(r.Intn(1000)), 0, 0))
	}

	want, err := builder.Build(trips)
	require.NoError(t, err)

	for round := 0; round < 5; round++ {
		shuffled := append([]trip.Trip(nil), trips...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := builder.Build(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want.Edges(), got.Edges())
		assert.Equal(t, want.Stations(), got.Stations())
	}
}

func TestParseDimension(t *testing.T) {
	cases := map[string]builder.Dimension{
		"cost":     builder.DimensionCost,
		"Price":    builder.DimensionCost,
		" time ":   builder.DimensionDuration,
		"DURATION": builder.DimensionDuration,
	}
	for in, want := range cases {
		got, err := builder.ParseDimension(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := builder.ParseDimension("distance")
	assert.ErrorIs(t, err, builder.ErrUnknownDimension)
}

func TestDimension_String(t *testing.T) {
	assert.Equal(t, "cost", builder.DimensionCost.String())
	assert.Equal(t, "time", builder.DimensionDuration.String())
	assert.Equal(t, "dimension(9)", builder.Dimension(9).String())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithDimension(builder.Dimension(9)) })
}
