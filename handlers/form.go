package handlers

import (
	"net/http"
	"strconv"
	"time"
)

// monthYearFromRequest reads the month/year filter from the query,
// falling back to the current month. Out-of-range values are ignored
// rather than rejected, matching how the dashboard filters behave.
func monthYearFromRequest(r *http.Request) (int, int) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y >= 2000 && y <= 2100 {
		year = y
	}
	return month, year
}

// yearRange builds the year dropdown: the first recorded year plus the
// four after it.
func yearRange(firstYear int) []int {
	years := make([]int, 5)
	for i := range years {
		years[i] = firstYear + i
	}
	return years
}

// parseBreakField validates an optional break_minutes form value. An
// empty field is fine (the break is computed server-side anyway); a
// present one must be an integer within the allowed window.
func parseBreakField(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > 480 {
		return 0, false
	}
	return v, true
}
