package timesheet

import "time"

// WorkedEntry is the slice of a time entry the aggregation cares about:
// the calendar date (used only for year-month bucketing) and the net
// hours worked that day.
type WorkedEntry struct {
	Date  time.Time
	Hours float64
}

// Totals describes a set of entries measured against the monthly limit.
type Totals struct {
	Worked   float64
	Months   int
	Limit    float64
	Overtime float64
}

// SumHours adds up the net hours of all entries.
func SumHours(entries []WorkedEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// CountMonths counts the distinct year-month buckets the entries fall
// into. Only the date matters; the bucket key carries no time-of-day so
// entries logged around midnight can't straddle two buckets.
func CountMonths(entries []WorkedEntry) int {
	months := make(map[string]struct{})
	for _, e := range entries {
		months[e.Date.Format("2006-01")] = struct{}{}
	}
	return len(months)
}

// MonthlyOvertime returns the hours worked beyond the monthly limit for
// a single month's entries, floored at zero.
func MonthlyOvertime(entries []WorkedEntry, monthlyLimit int) float64 {
	return max(0, SumHours(entries)-float64(monthlyLimit))
}

// Summarize measures an arbitrary entry set against the monthly limit:
// each distinct month contributes one allowance, and overtime is the
// excess over the combined allowance, floored at zero. Used both for the
// all-time view and for the everything-before-this-month view (the
// caller restricts the entry set).
func Summarize(entries []WorkedEntry, monthlyLimit int) Totals {
	t := Totals{
		Worked: SumHours(entries),
		Months: CountMonths(entries),
	}
	t.Limit = float64(t.Months * monthlyLimit)
	t.Overtime = max(0, t.Worked-t.Limit)
	return t
}
