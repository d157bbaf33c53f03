package subsidy

import "github.com/shopspring/decimal"

// Calculate computes the subsidy owed for in.
//
// The eligibility gate is the only early exit: without qualifying
// contributions the ineligible Result is returned and nothing else is
// computed. Otherwise the daily reference value is scaled by the tier rate,
// raised by the dependents surcharge, floored at the legal minimum and paid
// for every payable day.
//
// Calculate expects input that passed Validate; it is pure and safe for
// concurrent use.
func Calculate(in Inputs) Result {
	if !in.QualifyingContributions {
		return ineligible(ReasonInsufficientContributions)
	}

	illness := in.IllnessType.normalize()

	daily := DailyReference(in.ReferenceRemuneration)
	pct := PercentageRate(in.LeaveDays, illness)
	days := PayableDays(in.LeaveDays, illness)

	base := applyPercent(daily, pct)
	surcharge := SurchargePercent(in.LeaveDays, in.Dependents)
	surcharged := applyPercent(base, 100+surcharge)

	final := decimal.Max(surcharged, minimumDaily)
	floorApplied := surcharged.LessThan(minimumDaily)

	return Result{
		Eligible: true,
		Breakdown: Breakdown{
			IllnessType:      illness,
			DailyReference:   daily,
			Percentage:       pct,
			PayableDays:      days,
			BaseDaily:        base,
			SurchargePercent: surcharge,
			SurchargedDaily:  surcharged,
			FinalDaily:       final,
			FloorApplied:     floorApplied,
			Total:            final.Mul(decimal.NewFromInt(int64(days))),
		},
	}
}
