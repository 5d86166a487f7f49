package tui

import (
	"testing"

	"cleanstaff/internal/plan"
	"cleanstaff/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := components.TabVisualWidth(components.Tabs[i], i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}
	}
}

func TestRecomputeProfitablePlan(t *testing.T) {
	a := App{in: plan.DefaultInputs(), currency: "RM"}
	a.recompute()

	if a.unprofitable {
		t.Fatalf("default inputs flagged unprofitable: %s", a.reason)
	}
	if a.proj.CleanersNeeded != 15 {
		t.Fatalf("CleanersNeeded = %d, want 15", a.proj.CleanersNeeded)
	}
	if a.totals.Jobs != 15*52 {
		t.Fatalf("monthly jobs = %d, want %d", a.totals.Jobs, 15*52)
	}
	if len(a.split) == 0 || len(a.flow) == 0 {
		t.Fatal("derived split/flow not populated")
	}
}

func TestRecomputeUnprofitablePlan(t *testing.T) {
	in := plan.DefaultInputs()
	in.JobRevenue = 40 // below per-job costs

	a := App{in: in, currency: "RM"}
	a.recompute()

	if !a.unprofitable {
		t.Fatal("expected unprofitable flag")
	}
	if a.reason == "" {
		t.Fatal("expected a reason for the unprofitable plan")
	}
	if a.proj.CleanersNeeded != 0 {
		t.Fatalf("CleanersNeeded = %d, want 0 for unprofitable plan", a.proj.CleanersNeeded)
	}
	// Partial projection still carries the per-job loss for display
	if a.proj.ProfitPerJob >= 0 {
		t.Fatalf("ProfitPerJob = %v, want negative", a.proj.ProfitPerJob)
	}
}

func TestRecomputeEditRoundTrip(t *testing.T) {
	a := App{in: plan.DefaultInputs(), currency: "RM"}
	a.recompute()
	before := a.proj.CleanersNeeded

	a.in.TargetProfit *= 2
	a.recompute()
	if a.proj.CleanersNeeded <= before {
		t.Fatalf("doubling the goal should need more cleaners: %d -> %d",
			before, a.proj.CleanersNeeded)
	}

	a.in.TargetProfit = plan.DefaultInputs().TargetProfit
	a.recompute()
	if a.proj.CleanersNeeded != before {
		t.Fatalf("restoring the goal should restore headcount: got %d, want %d",
			a.proj.CleanersNeeded, before)
	}
}
