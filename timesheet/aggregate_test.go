package timesheet

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountMonths(t *testing.T) {
	entries := []WorkedEntry{
		{Date: day(2025, time.June, 1), Hours: 5},
		{Date: day(2025, time.June, 30), Hours: 5},
		{Date: day(2025, time.July, 1), Hours: 5},
		{Date: day(2026, time.June, 15), Hours: 5}, // same month, different year
	}
	if got := CountMonths(entries); got != 3 {
		t.Fatalf("CountMonths = %d, want 3", got)
	}
	if got := CountMonths(nil); got != 0 {
		t.Fatalf("CountMonths(nil) = %d, want 0", got)
	}
}

func TestMonthlyOvertime(t *testing.T) {
	entries := []WorkedEntry{
		{Date: day(2025, time.June, 2), Hours: 20},
		{Date: day(2025, time.June, 9), Hours: 25},
	}
	if got := MonthlyOvertime(entries, 39); got != 6 {
		t.Fatalf("overtime = %v, want 6", got)
	}
	// Under the limit floors at zero, never negative.
	if got := MonthlyOvertime(entries[:1], 39); got != 0 {
		t.Fatalf("overtime under limit = %v, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	entries := []WorkedEntry{
		{Date: day(2025, time.May, 5), Hours: 30},
		{Date: day(2025, time.June, 3), Hours: 45},
		{Date: day(2025, time.June, 17), Hours: 10},
	}
	got := Summarize(entries, 39)
	want := Totals{Worked: 85, Months: 2, Limit: 78, Overtime: 7}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}

	// Same inputs, same answer: aggregation has no hidden state.
	if again := Summarize(entries, 39); again != got {
		t.Fatalf("Summarize not idempotent: %+v then %+v", got, again)
	}

	empty := Summarize(nil, 39)
	if empty != (Totals{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero totals", empty)
	}
}
