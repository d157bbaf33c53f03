/*
Package subsidy computes sickness-subsidy entitlements.

PURPOSE:
  Turns a worker's six-month reference remuneration and a spell of medical
  leave into the subsidy amount owed, following one fixed set of legal tiers:
  a percentage rate by illness type and duration, a waiting period for common
  illness, a surcharge for dependents on long leave, and a guaranteed daily
  minimum derived from the social-support index (IAS).

KEY CONCEPTS IN THIS FILE (types.go):
  - IllnessType: Closed set of illness categories (common, hospitalization, tuberculosis)
  - Inputs:      Immutable calculation input record
  - Result:      Either the ineligible variant or an eligible Breakdown
  - Breakdown:   Every intermediate value of an eligible calculation

DESIGN PRINCIPLES:
  1. Purity: Calculate has no hidden state, no I/O and never fails
  2. Precision: Money is decimal.Decimal end to end
  3. Structure over text: callers get the Breakdown; rendering is separate (render.go)

USAGE:
  in := subsidy.NewInputs(decimal.NewFromInt(3000), 40, true,
      subsidy.WithIllness(subsidy.IllnessCommon),
      subsidy.WithDependents(1))
  if err := in.Validate(); err != nil {
      return err
  }
  res := subsidy.Calculate(in)
  if !res.Eligible {
      ...
  }
  fmt.Println(res.Breakdown.Total.StringFixed(2)) // 388.50

SEE ALSO:
  - rules.go: Constants, percentage table, payable days, surcharge
  - calculator.go: The calculation itself
  - errors.go: Input validation errors
*/
package subsidy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ILLNESS TYPE
// =============================================================================

// IllnessType identifies the category of illness behind the leave.
// The zero value is treated as IllnessCommon.
type IllnessType string

const (
	IllnessCommon          IllnessType = "common"
	IllnessHospitalization IllnessType = "hospitalization"
	IllnessTuberculosis    IllnessType = "tuberculosis"
)

// IllnessTypes lists every supported illness type in table order.
var IllnessTypes = []IllnessType{IllnessTuberculosis, IllnessHospitalization, IllnessCommon}

// Valid reports whether t is one of the known illness types (or the zero value).
func (t IllnessType) Valid() bool {
	switch t.normalize() {
	case IllnessCommon, IllnessHospitalization, IllnessTuberculosis:
		return true
	default:
		return false
	}
}

func (t IllnessType) String() string { return string(t.normalize()) }

// HasWaitingPeriod reports whether the first days of leave are unpaid.
func (t IllnessType) HasWaitingPeriod() bool {
	return t.normalize() == IllnessCommon
}

func (t IllnessType) normalize() IllnessType {
	if t == "" {
		return IllnessCommon
	}
	return t
}

// ParseIllnessType converts a name into an IllnessType.
// Matching is case-insensitive; an empty name yields IllnessCommon.
func ParseIllnessType(s string) (IllnessType, error) {
	t := IllnessType(strings.ToLower(strings.TrimSpace(s))).normalize()
	if !t.Valid() {
		return "", &InputError{Field: FieldIllnessType, Value: s, Err: ErrUnknownIllnessType}
	}
	return t, nil
}

// =============================================================================
// INPUTS
// =============================================================================

// Inputs is the full input record for one calculation.
type Inputs struct {
	// ReferenceRemuneration is the total gross pay over the six months
	// used as reference.
	ReferenceRemuneration decimal.Decimal

	// LeaveDays is the total number of days of medical leave.
	LeaveDays int

	// IllnessType defaults to IllnessCommon.
	IllnessType IllnessType

	// QualifyingContributions is true when the worker has at least six months
	// of contributions with twelve days of effective work.
	QualifyingContributions bool

	// Dependents is the number of family members in the worker's care.
	Dependents int
}

// Option customizes Inputs built with NewInputs.
type Option func(*Inputs)

// WithIllness sets the illness type.
func WithIllness(t IllnessType) Option {
	return func(in *Inputs) { in.IllnessType = t }
}

// WithDependents sets the number of dependents.
func WithDependents(n int) Option {
	return func(in *Inputs) { in.Dependents = n }
}

// NewInputs builds Inputs with the documented defaults
// (IllnessCommon, no dependents) and applies opts on top.
func NewInputs(remuneration decimal.Decimal, leaveDays int, qualifying bool, opts ...Option) Inputs {
	in := Inputs{
		ReferenceRemuneration:   remuneration,
		LeaveDays:               leaveDays,
		IllnessType:             IllnessCommon,
		QualifyingContributions: qualifying,
		Dependents:              0,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// =============================================================================
// RESULT
// =============================================================================

// IneligibilityReason explains why no subsidy is owed.
type IneligibilityReason string

const (
	// ReasonInsufficientContributions: the minimum contribution record
	// (six months, twelve effective work days) is not met.
	ReasonInsufficientContributions IneligibilityReason = "insufficient_contributions"
)

// Result is the outcome of a calculation. When Eligible is false only Reason
// is meaningful and Breakdown is the zero value.
type Result struct {
	Eligible  bool
	Reason    IneligibilityReason
	Breakdown Breakdown
}

// Breakdown carries every value derived during an eligible calculation.
type Breakdown struct {
	IllnessType IllnessType

	DailyReference decimal.Decimal // remuneration / 180
	Percentage     int             // rate from the tier table, in percent
	PayableDays    int

	BaseDaily        decimal.Decimal // DailyReference x Percentage
	SurchargePercent int             // 0, 5 or 10
	SurchargedDaily  decimal.Decimal
	FinalDaily       decimal.Decimal // after the minimum floor
	FloorApplied     bool

	Total decimal.Decimal
}

// HasSurcharge reports whether a dependents surcharge was applied.
func (b Breakdown) HasSurcharge() bool { return b.SurchargePercent > 0 }

func ineligible(reason IneligibilityReason) Result {
	return Result{Eligible: false, Reason: reason}
}
