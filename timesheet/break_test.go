package timesheet

import "testing"

func TestMinimumBreak(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 15},
		{4, 15},
		{6.0, 15},
		{6.01, 30},
		{8, 30},
		{10.0, 30},
		{10.01, 45},
		{14, 45},
	}
	for _, tc := range cases {
		if got := MinimumBreak(tc.hours); got != tc.want {
			t.Fatalf("MinimumBreak(%v) = %d, want %d", tc.hours, got, tc.want)
		}
	}
}
