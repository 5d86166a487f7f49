package tui

import (
	"testing"

	"cleanstaff/internal/plan"
)

func TestApplyInputField(t *testing.T) {
	base := plan.DefaultInputs()

	tests := []struct {
		name    string
		field   int
		raw     string
		wantErr bool
		check   func(in plan.Inputs) bool
	}{
		{"job revenue", inputFieldJobRevenue, "120", false,
			func(in plan.Inputs) bool { return in.JobRevenue == 120 }},
		{"decimal money", inputFieldCleanerPay, "37.50", false,
			func(in plan.Inputs) bool { return in.CleanerPay == 37.5 }},
		{"zero cost allowed", inputFieldSupplies, "0", false,
			func(in plan.Inputs) bool { return in.SuppliesCost == 0 }},
		{"whitespace trimmed", inputFieldHostel, " 450 ", false,
			func(in plan.Inputs) bool { return in.HostelMonthly == 450 }},
		{"negative money rejected", inputFieldTransport, "-5", true, nil},
		{"garbage rejected", inputFieldJobRevenue, "abc", true, nil},
		{"jobs per day in range", inputFieldJobsPerDay, "3", false,
			func(in plan.Inputs) bool { return in.JobsPerDay == 3 }},
		{"jobs per day too high", inputFieldJobsPerDay, "6", true, nil},
		{"jobs per day zero", inputFieldJobsPerDay, "0", true, nil},
		{"jobs per day fractional", inputFieldJobsPerDay, "2.5", true, nil},
		{"working days in range", inputFieldWorkingDays, "31", false,
			func(in plan.Inputs) bool { return in.WorkingDays == 31 }},
		{"working days too high", inputFieldWorkingDays, "32", true, nil},
		{"zero target allowed", inputFieldTargetProfit, "0", false,
			func(in plan.Inputs) bool { return in.TargetProfit == 0 }},
	}

	for _, tc := range tests {
		got, err := applyInputField(base, tc.field, tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got none", tc.name)
			}
			if got != base {
				t.Errorf("%s: inputs mutated on rejected edit", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if !tc.check(got) {
			t.Errorf("%s: field not applied, got %+v", tc.name, got)
		}
	}
}
