// Package timesheet contains the calculation rules for logged shifts:
// wall-clock parsing, net hours per shift, the statutory minimum break,
// the monthly hour allowance and the capped minijob payout.
package timesheet

import (
	"errors"
	"time"
)

const minutesPerDay = 24 * 60

var ErrBadClock = errors.New("timesheet: unparseable clock value")

// ParseClock converts a wall-clock string to a minute-of-day value.
// "HH:MM:SS" is tried first, then "HH:MM"; seconds are discarded.
func ParseClock(s string) (int, error) {
	if s == "" {
		return 0, ErrBadClock
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, ErrBadClock
	}
	return t.Hour()*60 + t.Minute(), nil
}
