package trip_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tripgraph/trip"
)

// ExampleTrip_TravelTime shows the next-day rollover applied to an overnight trip.
func ExampleTrip_TravelTime() {
	dep := 23*time.Hour + 50*time.Minute
	arr := 10 * time.Minute
	tr := trip.New("N1", 1909, 1929, 4550, dep, arr)

	fmt.Println(tr.TravelTime(), tr.TravelTimeMillis())
	// Output: 20m0s 1200000
}
