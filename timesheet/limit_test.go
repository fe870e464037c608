package timesheet

import "testing"

func TestMonthlyLimit(t *testing.T) {
	cases := []struct {
		limit, wage int
		want        int
		ok          bool
	}{
		{556, 14, 39, true}, // 556/14 = 39.71… floors to 39
		{556, 1, 556, true},
		{520, 13, 40, true},
		{556, 0, 0, false},
		{556, -5, 0, false},
	}
	for _, tc := range cases {
		got, err := MonthlyLimit(tc.limit, tc.wage)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("MonthlyLimit(%d, %d) = %d, %v; want %d", tc.limit, tc.wage, got, err, tc.want)
			}
		} else if err == nil {
			t.Fatalf("MonthlyLimit(%d, %d) expected error", tc.limit, tc.wage)
		}
	}
}
