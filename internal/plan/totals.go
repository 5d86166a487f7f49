package plan

// Totals holds the projected whole-month financials once the staffed
// workforce is scaled out.
type Totals struct {
	Jobs         int
	Revenue      float64 // revenue the staffed workforce must bring in
	CleanerPay   float64
	Transport    float64
	Supplies     float64
	Hostel       float64
	TargetProfit float64
}

// TotalRevenue returns the monthly revenue figure used by the flow
// breakdown: the sum of the four cost components plus the target profit.
// The target, not a price-times-volume derivation, is the final additive
// component so the flow always closes exactly at the profit goal.
func (t Totals) TotalRevenue() float64 {
	return t.CleanerPay + t.Transport + t.Supplies + t.Hostel + t.TargetProfit
}

// MonthlyTotals scales the per-cleaner projection up to the full roster.
func MonthlyTotals(in Inputs, p Projection) Totals {
	n := float64(p.CleanersNeeded)
	jobs := float64(p.JobsPerCleanerMonthly)
	return Totals{
		Jobs:         p.CleanersNeeded * p.JobsPerCleanerMonthly,
		Revenue:      n * in.JobRevenue * jobs,
		CleanerPay:   n * in.CleanerPay * jobs,
		Transport:    n * in.TransportCost * jobs,
		Supplies:     n * in.SuppliesCost * jobs,
		Hostel:       n * in.HostelMonthly,
		TargetProfit: in.TargetProfit,
	}
}

// Slice is one component of the per-job revenue split.
type Slice struct {
	Label  string
	Amount float64
	Share  float64 // fraction of job revenue; 0 when revenue is 0
}

// JobSplit breaks a single job's revenue into its cost and profit
// components, in display order.
func JobSplit(in Inputs, p Projection) []Slice {
	slices := []Slice{
		{Label: "Cleaner Pay", Amount: in.CleanerPay},
		{Label: "Transport", Amount: in.TransportCost},
		{Label: "Supplies", Amount: in.SuppliesCost},
		{Label: "Profit", Amount: p.ProfitPerJob},
	}
	if in.JobRevenue > 0 {
		for i := range slices {
			slices[i].Share = slices[i].Amount / in.JobRevenue
		}
	}
	return slices
}

// Step is one row of the monthly revenue-to-profit flow. Amount is
// negative for cost deductions.
type Step struct {
	Label  string
	Amount float64
}

// Flow returns the monthly revenue flow: total revenue at the top, the
// four cost deductions, and the retained target profit at the bottom.
func Flow(t Totals) []Step {
	return []Step{
		{Label: "Total Revenue", Amount: t.TotalRevenue()},
		{Label: "Cleaner Pay", Amount: -t.CleanerPay},
		{Label: "Transport", Amount: -t.Transport},
		{Label: "Supplies", Amount: -t.Supplies},
		{Label: "Hostel", Amount: -t.Hostel},
		{Label: "Net Profit", Amount: t.TargetProfit},
	}
}
