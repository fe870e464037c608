package timesheet

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in  string
		min int
		ok  bool
	}{
		{"08:00", 480, true},
		{"08:30:45", 510, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"", 0, false},
		{"8 o'clock", 0, false},
		{"25:00", 0, false},
		{"12:61", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.ok {
			if err != nil || got != tc.min {
				t.Fatalf("ParseClock(%q) = %d, %v; want %d", tc.in, got, err, tc.min)
			}
		} else if err == nil {
			t.Fatalf("ParseClock(%q) expected error, got %d", tc.in, got)
		}
	}
}
