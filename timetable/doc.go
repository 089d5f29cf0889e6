// Package timetable reads the semicolon-delimited trip file and turns each row
// into a trip.Trip.
//
// Row layout (no header):
//
//	number;from;to;cost;departure;arrival
//	1;1909;1904;12.50;14:25:00;16:05:00
//
// Columns:
//
//   - number     – opaque trip label
//   - from, to   – integer station IDs
//   - cost       – decimal amount, "." or "," as separator; stored ×100 as minor units
//   - departure  – time of day, H:M:S
//   - arrival    – time of day, H:M:S (next-day rollover is applied by trip.Trip)
//
// A malformed row fails the whole read: partially parsed trips never reach the
// graph builder. Errors wrap ErrMalformedRow, ErrBadCost or ErrBadClock with the
// 1-based record number.
package timetable
