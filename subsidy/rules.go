/*
rules.go - The legal rule set behind the calculation

PURPOSE:
  Holds the constants and the small formulas the calculator is made of.
  Each formula is exported so surfaces and tests can show or check a single
  step without running a whole calculation.

CONSTANTS:
  IAS                  522.2   Reference social-support index
  Minimum daily        IAS x 0.3 / 30 (= 5.222)
  Reference divisor    180     Six months of pay to a daily value, flat
  Waiting period       3 days  Common illness only
  Max payable days     365
  Surcharge threshold  30 days Leave must be strictly longer

PERCENTAGE TABLE (inclusive upper bounds, checked in ascending order):
  illness          <=30  <=90  <=365  >365
  tuberculosis      100   100    100   100
  hospitalization    60    70     75    80
  common             55    60     70    75

SEE ALSO:
  - calculator.go: Chains these formulas together
*/
package subsidy

import "github.com/shopspring/decimal"

const (
	// ReferenceDays converts six months of remuneration into a daily value.
	// It is a flat legal divisor, not the calendar length of the period.
	ReferenceDays = 180

	// WaitingDays are unpaid at the start of a common-illness leave.
	WaitingDays = 3

	// MaxPayableDays caps the number of days paid for one leave.
	MaxPayableDays = 365

	// SurchargeMinLeaveDays is the leave length that must be exceeded
	// before the dependents surcharge applies.
	SurchargeMinLeaveDays = 30

	// MaxRemunerationExponent bounds the decimal exponent of an accepted
	// remuneration in both directions, keeping every division and
	// multiplication on small coefficients.
	MaxRemunerationExponent = 32

	minimumDailyIASShare = "0.3"
	minimumDailyMonth    = 30
)

var (
	ias          = decimal.RequireFromString("522.2")
	minimumDaily = ias.Mul(decimal.RequireFromString(minimumDailyIASShare)).Div(decimal.NewFromInt(minimumDailyMonth))
	hundred      = decimal.NewFromInt(100)

	// maxRemuneration is the largest six-month remuneration accepted.
	maxRemuneration = decimal.New(1, 12)
)

// IAS returns the reference social-support index.
func IAS() decimal.Decimal { return ias }

// MinimumDaily returns the guaranteed minimum daily subsidy value.
func MinimumDaily() decimal.Decimal { return minimumDaily }

// MaxRemuneration returns the largest reference remuneration Validate accepts.
func MaxRemuneration() decimal.Decimal { return maxRemuneration }

// =============================================================================
// PERCENTAGE TABLE
// =============================================================================

// Tier is one column of the percentage table. A zero MaxDays marks the
// open-ended last tier.
type Tier struct {
	MaxDays int
	Rates   map[IllnessType]int
}

var tiers = []Tier{
	{MaxDays: 30, Rates: map[IllnessType]int{IllnessTuberculosis: 100, IllnessHospitalization: 60, IllnessCommon: 55}},
	{MaxDays: 90, Rates: map[IllnessType]int{IllnessTuberculosis: 100, IllnessHospitalization: 70, IllnessCommon: 60}},
	{MaxDays: 365, Rates: map[IllnessType]int{IllnessTuberculosis: 100, IllnessHospitalization: 75, IllnessCommon: 70}},
	{MaxDays: 0, Rates: map[IllnessType]int{IllnessTuberculosis: 100, IllnessHospitalization: 80, IllnessCommon: 75}},
}

// Tiers returns a copy of the percentage table in ascending order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		rates := make(map[IllnessType]int, len(t.Rates))
		for k, v := range t.Rates {
			rates[k] = v
		}
		out[i] = Tier{MaxDays: t.MaxDays, Rates: rates}
	}
	return out
}

// PercentageRate returns the subsidy rate, in percent of the daily
// reference value, for a leave of the given length.
func PercentageRate(leaveDays int, t IllnessType) int {
	t = t.normalize()
	for _, tier := range tiers {
		if tier.MaxDays == 0 || leaveDays <= tier.MaxDays {
			return tier.Rates[t]
		}
	}
	return 0
}

// =============================================================================
// FORMULAS
// =============================================================================

// DailyReference converts six-month remuneration into the daily reference value.
func DailyReference(remuneration decimal.Decimal) decimal.Decimal {
	return remuneration.Div(decimal.NewFromInt(ReferenceDays))
}

// PayableDays returns how many leave days are paid. Common illness loses the
// waiting period first; every type is capped at MaxPayableDays.
func PayableDays(leaveDays int, t IllnessType) int {
	switch t.normalize() {
	case IllnessHospitalization, IllnessTuberculosis:
		return min(leaveDays, MaxPayableDays)
	default:
		if leaveDays <= WaitingDays {
			return 0
		}
		return min(leaveDays-WaitingDays, MaxPayableDays)
	}
}

// SurchargePercent returns the dependents surcharge in percent: 5 for one
// dependent and 10 for two or more, only on leaves longer than 30 days.
func SurchargePercent(leaveDays, dependents int) int {
	if leaveDays <= SurchargeMinLeaveDays || dependents <= 0 {
		return 0
	}
	if dependents == 1 {
		return 5
	}
	return 10
}

// applyPercent returns v x (p / 100).
func applyPercent(v decimal.Decimal, p int) decimal.Decimal {
	return v.Mul(decimal.NewFromInt(int64(p))).Div(hundred)
}
