package timesheet

import "testing"

func TestShiftHours(t *testing.T) {
	cases := []struct {
		name         string
		start, end   string
		breakMinutes int
		want         float64
	}{
		{"regular day with break", "08:00", "16:00", 30, 7.5},
		{"no break", "09:00", "17:15", 0, 8.25},
		{"overnight shift", "22:00", "06:00", 0, 8.0},
		{"equal start and end means full day", "09:00", "09:00", 0, 24.0},
		{"break longer than shift clamps to zero", "08:00", "08:30", 600, 0.0},
		{"overnight plus break", "08:00", "07:00", 600, 13.0},
		{"negative break extends the net time", "08:00", "08:30", -30, 1.0},
		{"seconds accepted and ignored", "08:00:30", "12:00:00", 0, 4.0},
		{"rounding to two decimals", "08:00", "08:10", 0, 0.17},
		{"unparseable start counts as zero", "", "16:00", 0, 0},
		{"unparseable end counts as zero", "08:00", "nope", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ShiftHours(tc.start, tc.end, tc.breakMinutes)
			if got != tc.want {
				t.Fatalf("ShiftHours(%q, %q, %d) = %v, want %v",
					tc.start, tc.end, tc.breakMinutes, got, tc.want)
			}
			if got < 0 {
				t.Fatalf("ShiftHours must never be negative, got %v", got)
			}
		})
	}
}

func TestShiftHoursIsPure(t *testing.T) {
	a := ShiftHours("22:00", "06:00", 45)
	b := ShiftHours("22:00", "06:00", 45)
	if a != b {
		t.Fatalf("identical inputs produced %v and %v", a, b)
	}
}
