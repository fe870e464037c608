package timesheet

import "math"

// GrossMinutes returns the shift length in minutes before any break is
// subtracted. A shift ending at or before its start time is taken to
// cross midnight, so identical start and end mean a full 24 hours.
func GrossMinutes(start, end string) (int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	gross := endMin - startMin
	if endMin <= startMin {
		gross += minutesPerDay
	}
	return gross, nil
}

// ShiftHours computes the net hours worked for one shift, rounded to two
// decimals and never negative. Unparseable clock values count as zero
// hours so that malformed legacy rows don't break aggregation.
func ShiftHours(start, end string, breakMinutes int) float64 {
	gross, err := GrossMinutes(start, end)
	if err != nil {
		return 0
	}
	net := gross - breakMinutes
	if net < 0 {
		net = 0
	}
	return round2(float64(net) / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
