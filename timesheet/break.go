package timesheet

const defaultBreakMinutes = 15

// MinimumBreak returns the mandatory break in minutes for a shift of the
// given length in hours. The tiers follow the usual working-time rules:
// 15 minutes up to 6 hours, 30 up to 10 hours, 45 beyond that. Callers
// pass the gross (pre-break) hours and may override the result with an
// explicit no-break choice.
func MinimumBreak(hours float64) int {
	switch {
	case hours <= 6:
		return defaultBreakMinutes
	case hours <= 10:
		return defaultBreakMinutes * 2
	default:
		return defaultBreakMinutes * 3
	}
}
