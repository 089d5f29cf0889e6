// Package trip defines the Trip record: one scheduled, priced and timed movement
// between two stations of a transport network.
//
// A Trip is the source datum for every edge of the weighted station graph.
// Two scalar dimensions can be derived from it:
//
//   - Cost       – price in minor currency units (kopecks, cents), as stored.
//   - TravelTime – arrival minus departure, with a next-day rollover rule.
//
// Day rollover:
//
//	Departure and Arrival are time-of-day offsets from midnight. When the
//	arrival hour is numerically smaller than the departure hour the arrival is
//	taken to fall on the following day, so one Day is added before subtracting:
//
//	  23:50:00 → 00:10:00   = 20m        (rollover applied)
//	  08:15:00 → 09:40:00   = 1h25m      (same day)
//	  10:50:00 → 10:10:00   = -40m       (same hour, no rollover)
//
//	The rule looks at hours only. It cannot express multi-day trips and yields a
//	negative value for a same-hour wrap; callers that turn durations into graph
//	weights must reject negative values (see builder.ErrNegativeWeight).
//
// Trips are plain values. Nothing in this module mutates a caller's Trip slice.
package trip
