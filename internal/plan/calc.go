// Package plan computes staffing and profitability projections for a
// cleaning-services business: given the per-job economics and a monthly
// profit target, how many cleaners must be on the roster.
package plan

import "math"

// Inputs holds the eight business model parameters. Money fields are
// per-job amounts unless named otherwise.
type Inputs struct {
	JobRevenue    float64 // charged per cleaning job
	CleanerPay    float64 // paid to the cleaner per job
	TransportCost float64
	SuppliesCost  float64
	HostelMonthly float64 // fixed housing cost per cleaner per month
	JobsPerDay    int     // jobs one cleaner completes per working day
	WorkingDays   int     // working days in the accounting month
	TargetProfit  float64 // desired total profit for the month
}

// DefaultInputs returns the stock business model used when nothing is
// configured and no flags are given.
func DefaultInputs() Inputs {
	return Inputs{
		JobRevenue:    100,
		CleanerPay:    35,
		TransportCost: 17,
		SuppliesCost:  3,
		HostelMonthly: 300,
		JobsPerDay:    2,
		WorkingDays:   26,
		TargetProfit:  30000,
	}
}

// Projection holds the per-cleaner economics derived from one set of inputs
// plus the staffing count that meets the profit target.
type Projection struct {
	ProfitPerJob           float64
	JobsPerCleanerMonthly  int
	GrossMonthlyPerCleaner float64 // before hostel cost
	NetMonthlyPerCleaner   float64 // after hostel cost
	CleanersNeeded         int
}

// UnprofitableError reports that one cleaner cannot clear their own fixed
// costs, so no headcount reaches the target. It carries the four values
// computed before the staffing step; CleanersNeeded is always 0.
type UnprofitableError struct {
	Projection Projection
}

func (e *UnprofitableError) Error() string {
	return "net profit per cleaner is zero or negative; adjust inputs to achieve a positive profit per cleaner"
}

// Compute derives the projection for the given inputs.
//
// When net monthly profit per cleaner is zero or negative it returns a
// *UnprofitableError carrying the partial projection; the division is never
// attempted in that case. A negative profit per job on its own is not an
// error. Staffing always rounds up: hitting the target with capacity to
// spare beats missing it, and a zero target yields zero cleaners.
func Compute(in Inputs) (Projection, error) {
	var p Projection
	p.ProfitPerJob = in.JobRevenue - in.CleanerPay - in.TransportCost - in.SuppliesCost
	p.JobsPerCleanerMonthly = in.JobsPerDay * in.WorkingDays
	p.GrossMonthlyPerCleaner = p.ProfitPerJob * float64(p.JobsPerCleanerMonthly)
	p.NetMonthlyPerCleaner = p.GrossMonthlyPerCleaner - in.HostelMonthly

	if p.NetMonthlyPerCleaner <= 0 {
		return Projection{}, &UnprofitableError{Projection: p}
	}

	p.CleanersNeeded = int(math.Ceil(in.TargetProfit / p.NetMonthlyPerCleaner))
	return p, nil
}
