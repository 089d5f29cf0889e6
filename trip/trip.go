package trip

import (
	"fmt"
	"time"
)

// Day is the offset added to an arrival that falls on the next calendar day.
const Day = 24 * time.Hour

// Trip describes one scheduled movement between two stations.
//
// Number is an opaque label (train or route number); it plays no part in the search.
// Cost is expressed in minor currency units and is expected to be non-negative.
// Departure and Arrival are time-of-day offsets from midnight in [0, 24h).
type Trip struct {
	Number    string
	From      int
	To        int
	Cost      int64
	Departure time.Duration
	Arrival   time.Duration
}

// New returns a Trip populated with the given fields.
// Complexity: O(1).
func New(number string, from, to int, cost int64, departure, arrival time.Duration) Trip {
	return Trip{
		Number:    number,
		From:      from,
		To:        to,
		Cost:      cost,
		Departure: departure,
		Arrival:   arrival,
	}
}

// TravelTime returns Arrival − Departure. If the arrival hour is less than the
// departure hour, the arrival is moved to the next day before subtracting.
//
// Only the hour component is compared; see the package documentation for the
// cases this rule does not cover.
// Complexity: O(1).
func (t Trip) TravelTime() time.Duration {
	arrival := t.Arrival
	if hourOf(arrival) < hourOf(t.Departure) {
		arrival += Day
	}

	return arrival - t.Departure
}

// TravelTimeMillis returns TravelTime as an integer count of milliseconds.
// Complexity: O(1).
func (t Trip) TravelTimeMillis() int64 {
	return t.TravelTime().Milliseconds()
}

// String renders the trip as "number from→to cost dep-arr" for logs.
func (t Trip) String() string {
	return fmt.Sprintf("%s %d→%d cost=%d %s-%s",
		t.Number, t.From, t.To, t.Cost, clock(t.Departure), clock(t.Arrival))
}

// hourOf extracts the hour-of-day component of a time-of-day offset.
func hourOf(d time.Duration) int {
	return int(d/time.Hour) % 24
}

// clock formats a time-of-day offset as HH:MM:SS.
func clock(d time.Duration) string {
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
