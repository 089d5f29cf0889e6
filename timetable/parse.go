package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedRow indicates a row with missing or non-numeric station fields.
	ErrMalformedRow = errors.New("timetable: malformed row")

	// ErrBadCost indicates a cost that is not a non-negative decimal amount.
	ErrBadCost = errors.New("timetable: bad cost")

	// ErrBadClock indicates a time of day that is not H:M:S within range.
	ErrBadClock = errors.New("timetable: bad time of day")
)

// minorUnitsExp is the decimal exponent between major and minor currency units.
const minorUnitsExp = 2

// ParseCost converts a decimal amount such as "12.50" or "12,5" into minor units
// (1250). Fractions of a minor unit are rounded half-to-even.
func ParseCost(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadCost, s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrBadCost, s)
	}

	return d.Shift(minorUnitsExp).RoundBank(0).IntPart(), nil
}

// ParseClock converts "H:M:S" into an offset from midnight.
// Hours must be 0–23, minutes and seconds 0–59.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	limits := [3]int{23, 59, 59}
	units := [3]time.Duration{time.Hour, time.Minute, time.Second}
	var out time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
		}
		out += time.Duration(n) * units[i]
	}

	return out, nil
}

// parseStation converts a station ID field.
func parseStation(field, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedRow, field, s)
	}

	return id, nil
}
