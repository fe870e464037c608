package timesheet

// Payout is the earnings picture for the hours worked so far.
// CurrentPayout never exceeds the minijob limit; whatever was worked
// beyond the cap is reported as RestHours (carried over to a later
// payout period) and its wage value as Rest.
type Payout struct {
	CurrentPayout float64
	Rest          float64
	RestHours     float64
}

// MaxHours is the payout cap expressed in hours. Same floor division as
// MonthlyLimit; the two must agree because they describe one cap in two
// units.
func MaxHours(minijobLimit, hourlyWage int) (int, error) {
	return MonthlyLimit(minijobLimit, hourlyWage)
}

// ComputePayout converts the total hours worked into earnings, capping
// at the minijob limit. The function is pure: recording the carried-over
// rest hours is left to the caller so that merely rendering a dashboard
// doesn't write settings.
func ComputePayout(totalWorked float64, hourlyWage, minijobLimit int) (Payout, error) {
	maxHours, err := MaxHours(minijobLimit, hourlyWage)
	if err != nil {
		return Payout{}, err
	}

	earned := totalWorked * float64(hourlyWage)
	if earned > float64(minijobLimit) {
		restHours := totalWorked - float64(maxHours)
		return Payout{
			CurrentPayout: float64(minijobLimit),
			Rest:          restHours * float64(hourlyWage),
			RestHours:     restHours,
		}, nil
	}

	return Payout{CurrentPayout: earned}, nil
}
