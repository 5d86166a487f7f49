package plan

import (
	"errors"
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute_DefaultInputs(t *testing.T) {
	proj, err := Compute(DefaultInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "ProfitPerJob", proj.ProfitPerJob, 45)
	if proj.JobsPerCleanerMonthly != 52 {
		t.Fatalf("JobsPerCleanerMonthly = %d, want 52", proj.JobsPerCleanerMonthly)
	}
	nearlyEqual(t, "GrossMonthlyPerCleaner", proj.GrossMonthlyPerCleaner, 2340)
	nearlyEqual(t, "NetMonthlyPerCleaner", proj.NetMonthlyPerCleaner, 2040)
	// ceil(30000 / 2040) = ceil(14.7) = 15
	if proj.CleanersNeeded != 15 {
		t.Fatalf("CleanersNeeded = %d, want 15", proj.CleanersNeeded)
	}
}

func TestCompute_NegativeProfitPerJob(t *testing.T) {
	in := Inputs{
		JobRevenue:    90,
		CleanerPay:    60,
		TransportCost: 30,
		SuppliesCost:  10,
		JobsPerDay:    2,
		WorkingDays:   26,
		TargetProfit:  10000,
	}

	_, err := Compute(in)
	var ue *UnprofitableError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnprofitableError, got %v", err)
	}

	nearlyEqual(t, "ProfitPerJob", ue.Projection.ProfitPerJob, -10)
	nearlyEqual(t, "NetMonthlyPerCleaner", ue.Projection.NetMonthlyPerCleaner, -520)
	if ue.Projection.CleanersNeeded != 0 {
		t.Fatalf("CleanersNeeded = %d, want 0", ue.Projection.CleanersNeeded)
	}
	if ue.Error() == "" {
		t.Fatal("expected a non-empty reason")
	}
}

func TestCompute_ExactDivision(t *testing.T) {
	// net per cleaner = 50*40 - 0 = 2000, target 10000 -> exactly 5
	in := Inputs{
		JobRevenue:   50,
		JobsPerDay:   2,
		WorkingDays:  20,
		TargetProfit: 10000,
	}

	proj, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "NetMonthlyPerCleaner", proj.NetMonthlyPerCleaner, 2000)
	if proj.CleanersNeeded != 5 {
		t.Fatalf("CleanersNeeded = %d, want 5 (no overshoot on exact division)", proj.CleanersNeeded)
	}
}

func TestCompute_ZeroTarget(t *testing.T) {
	in := Inputs{
		JobRevenue:    60,
		CleanerPay:    30,
		HostelMonthly: 100,
		JobsPerDay:    1,
		WorkingDays:   20,
		TargetProfit:  0,
	}

	proj, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "NetMonthlyPerCleaner", proj.NetMonthlyPerCleaner, 500)
	if proj.CleanersNeeded != 0 {
		t.Fatalf("CleanersNeeded = %d, want 0 for zero target", proj.CleanersNeeded)
	}
}

func TestCompute_NetExactlyZeroIsUnprofitable(t *testing.T) {
	// gross = 10*52 = 520, hostel 520 -> net exactly 0
	in := Inputs{
		JobRevenue:    45,
		CleanerPay:    35,
		HostelMonthly: 520,
		JobsPerDay:    2,
		WorkingDays:   26,
		TargetProfit:  1,
	}

	_, err := Compute(in)
	var ue *UnprofitableError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnprofitableError at net = 0, got %v", err)
	}
	nearlyEqual(t, "NetMonthlyPerCleaner", ue.Projection.NetMonthlyPerCleaner, 0)
}

func TestCompute_CeilingBracketsTarget(t *testing.T) {
	cases := []float64{1, 500, 2039, 2040, 2041, 29999, 30000, 30001, 123456}

	for _, target := range cases {
		in := DefaultInputs()
		in.TargetProfit = target

		proj, err := Compute(in)
		if err != nil {
			t.Fatalf("target %.0f: unexpected error: %v", target, err)
		}

		n := float64(proj.CleanersNeeded)
		net := proj.NetMonthlyPerCleaner
		if n*net < target {
			t.Fatalf("target %.0f: %d cleaners yield %.2f, below target", target, proj.CleanersNeeded, n*net)
		}
		if proj.CleanersNeeded > 0 && (n-1)*net >= target {
			t.Fatalf("target %.0f: %d cleaners overshoots; %d would suffice", target, proj.CleanersNeeded, proj.CleanersNeeded-1)
		}
	}
}

func TestCompute_RevenueMonotonicity(t *testing.T) {
	in := DefaultInputs()

	prevCleaners := math.MaxInt
	prevNet := math.Inf(-1)
	for rev := 60.0; rev <= 200; rev += 5 {
		in.JobRevenue = rev
		proj, err := Compute(in)
		if err != nil {
			var ue *UnprofitableError
			if !errors.As(err, &ue) {
				t.Fatalf("revenue %.0f: unexpected error: %v", rev, err)
			}
			proj = ue.Projection
		} else {
			if proj.CleanersNeeded > prevCleaners {
				t.Fatalf("revenue %.0f: CleanersNeeded rose from %d to %d", rev, prevCleaners, proj.CleanersNeeded)
			}
			prevCleaners = proj.CleanersNeeded
		}
		if proj.NetMonthlyPerCleaner < prevNet {
			t.Fatalf("revenue %.0f: net per cleaner fell from %.2f to %.2f", rev, prevNet, proj.NetMonthlyPerCleaner)
		}
		prevNet = proj.NetMonthlyPerCleaner
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := DefaultInputs()

	first, err1 := Compute(in)
	second, err2 := Compute(in)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Fatalf("repeated calls disagree: %+v vs %+v", first, second)
	}
}
