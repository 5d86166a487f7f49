package plan

import "testing"

func TestSweep_TargetProfitStaircase(t *testing.T) {
	points := Sweep(DefaultInputs(), SweepTargetProfit, 0, 30000, 10)

	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}
	if points[0].Value != 0 || points[len(points)-1].Value != 30000 {
		t.Fatalf("endpoints = %v, %v, want 0 and 30000", points[0].Value, points[len(points)-1].Value)
	}

	prev := -1
	for _, pt := range points {
		if pt.Unprofitable {
			t.Fatalf("value %.0f: unexpectedly unprofitable", pt.Value)
		}
		if pt.Projection.CleanersNeeded < prev {
			t.Fatalf("value %.0f: staffing fell from %d to %d", pt.Value, prev, pt.Projection.CleanersNeeded)
		}
		prev = pt.Projection.CleanersNeeded
	}

	if points[0].Projection.CleanersNeeded != 0 {
		t.Fatalf("zero target needs %d cleaners, want 0", points[0].Projection.CleanersNeeded)
	}
	if points[len(points)-1].Projection.CleanersNeeded != 15 {
		t.Fatalf("30000 target needs %d cleaners, want 15", points[len(points)-1].Projection.CleanersNeeded)
	}
}

func TestSweep_RevenueCrossesIntoProfit(t *testing.T) {
	// Below ~60.77 revenue the model cannot cover the hostel cost.
	points := Sweep(DefaultInputs(), SweepJobRevenue, 40, 120, 8)

	if !points[0].Unprofitable {
		t.Fatal("lowest revenue point should be unprofitable")
	}
	if points[len(points)-1].Unprofitable {
		t.Fatal("highest revenue point should be profitable")
	}

	// Once profitable, later points stay profitable.
	seenProfit := false
	for _, pt := range points {
		if !pt.Unprofitable {
			seenProfit = true
		} else if seenProfit {
			t.Fatalf("value %.2f: unprofitable after a profitable point", pt.Value)
		}
		if pt.Unprofitable && pt.Projection.CleanersNeeded != 0 {
			t.Fatalf("value %.2f: unprofitable point reports %d cleaners", pt.Value, pt.Projection.CleanersNeeded)
		}
	}
}

func TestSweep_SingleStepFloor(t *testing.T) {
	points := Sweep(DefaultInputs(), SweepHostelMonthly, 100, 500, 0)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (steps clamped to 1)", len(points))
	}
}

func TestSweepFieldByName(t *testing.T) {
	for _, name := range []string{"target-profit", "job-revenue", "cleaner-pay", "hostel"} {
		f, ok := SweepFieldByName(name)
		if !ok {
			t.Fatalf("unknown field %q", name)
		}
		if f.String() != name {
			t.Fatalf("round trip %q -> %q", name, f.String())
		}
	}
	if _, ok := SweepFieldByName("supplies"); ok {
		t.Fatal("expected supplies to be unknown")
	}
}
