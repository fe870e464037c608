package timesheet

import "errors"

var ErrInvalidWage = errors.New("timesheet: hourly wage must be at least 1")

// MonthlyLimit derives the standard hours allowed per month from the
// minijob earnings cap and the hourly wage. Integer floor division on
// purpose: the same truncated figure is used as the payout cap in hours
// (see MaxHours), and mixing float and integer semantics between the two
// call sites would make the thresholds drift apart.
func MonthlyLimit(minijobLimit, hourlyWage int) (int, error) {
	if hourlyWage < 1 {
		return 0, ErrInvalidWage
	}
	return minijobLimit / hourlyWage, nil
}
