package plan

import "errors"

// SweepField selects which input a sensitivity sweep varies.
type SweepField int

const (
	SweepTargetProfit SweepField = iota
	SweepJobRevenue
	SweepCleanerPay
	SweepHostelMonthly
)

// String returns the flag-style name of the field.
func (f SweepField) String() string {
	switch f {
	case SweepTargetProfit:
		return "target-profit"
	case SweepJobRevenue:
		return "job-revenue"
	case SweepCleanerPay:
		return "cleaner-pay"
	case SweepHostelMonthly:
		return "hostel"
	}
	return "unknown"
}

// SweepFieldByName maps a flag-style name to its SweepField.
func SweepFieldByName(name string) (SweepField, bool) {
	for _, f := range []SweepField{SweepTargetProfit, SweepJobRevenue, SweepCleanerPay, SweepHostelMonthly} {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// SweepPoint is the projection at one swept input value.
type SweepPoint struct {
	Value        float64
	Projection   Projection
	Unprofitable bool
}

// Sweep evaluates the model at steps+1 evenly spaced values of field from
// lo to hi, holding every other input fixed. Unprofitable points carry the
// partial projection with CleanersNeeded = 0.
func Sweep(in Inputs, field SweepField, lo, hi float64, steps int) []SweepPoint {
	if steps < 1 {
		steps = 1
	}

	points := make([]SweepPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		v := lo + (hi-lo)*float64(i)/float64(steps)

		varied := in
		switch field {
		case SweepTargetProfit:
			varied.TargetProfit = v
		case SweepJobRevenue:
			varied.JobRevenue = v
		case SweepCleanerPay:
			varied.CleanerPay = v
		case SweepHostelMonthly:
			varied.HostelMonthly = v
		}

		pt := SweepPoint{Value: v}
		proj, err := Compute(varied)
		if err != nil {
			var ue *UnprofitableError
			if errors.As(err, &ue) {
				pt.Projection = ue.Projection
				pt.Unprofitable = true
			}
		} else {
			pt.Projection = proj
		}
		points = append(points, pt)
	}
	return points
}
