package timesheet

import "testing"

func TestComputePayoutCapped(t *testing.T) {
	// 50h at 14/h earns 700, over the 556 cap. maxHours = 556/14 = 39.
	got, err := ComputePayout(50, 14, 556)
	if err != nil {
		t.Fatal(err)
	}
	want := Payout{CurrentPayout: 556, Rest: 154, RestHours: 11}
	if got != want {
		t.Fatalf("ComputePayout = %+v, want %+v", got, want)
	}
}

func TestComputePayoutUnderCap(t *testing.T) {
	got, err := ComputePayout(20, 14, 556)
	if err != nil {
		t.Fatal(err)
	}
	want := Payout{CurrentPayout: 280}
	if got != want {
		t.Fatalf("ComputePayout = %+v, want %+v", got, want)
	}
}

func TestComputePayoutZeroWage(t *testing.T) {
	if _, err := ComputePayout(20, 0, 556); err == nil {
		t.Fatal("expected error for zero wage")
	}
}

func TestComputePayoutNoHours(t *testing.T) {
	got, err := ComputePayout(0, 14, 556)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Payout{}) {
		t.Fatalf("ComputePayout(0, …) = %+v, want zero payout", got)
	}
}
