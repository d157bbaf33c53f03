/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the subsidy package's decimal-based model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY IN RESPONSES:
  Totals are rounded to cents; daily values keep four decimals so the
  minimum (5.222) stays visible. Clients needing exact values should
  recompute from the breakdown inputs.

SEE ALSO:
  - handlers.go: Uses these types
  - subsidy/types.go: Domain types
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/subsidy-engine/subsidy"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculateRequest is the body of POST /api/subsidies/sickness.
// reference_remuneration accepts a JSON number or a numeric string.
type CalculateRequest struct {
	ReferenceRemuneration   *decimal.Decimal `json:"reference_remuneration"`
	LeaveDays               *int             `json:"leave_days"`
	IllnessType             string           `json:"illness_type,omitempty"`
	QualifyingContributions bool             `json:"qualifying_contributions"`
	Dependents              int              `json:"dependents,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// CalculationDTO is the response of a calculation.
type CalculationDTO struct {
	CalculationID string        `json:"calculation_id"`
	Eligible      bool          `json:"eligible"`
	Reason        string        `json:"reason,omitempty"`
	Breakdown     *BreakdownDTO `json:"breakdown,omitempty"`
	Summary       []string      `json:"summary"`
}

// BreakdownDTO mirrors subsidy.Breakdown.
type BreakdownDTO struct {
	IllnessType      string  `json:"illness_type"`
	DailyReference   float64 `json:"daily_reference"`
	Percentage       int     `json:"percentage"`
	PayableDays      int     `json:"payable_days"`
	BaseDaily        float64 `json:"base_daily"`
	SurchargePercent int     `json:"surcharge_percent"`
	FinalDaily       float64 `json:"final_daily"`
	FloorApplied     bool    `json:"floor_applied"`
	Total            float64 `json:"total"`
}

// RulesDTO publishes the rule set used by the calculator.
type RulesDTO struct {
	IAS                   float64   `json:"ias"`
	MinimumDaily          float64   `json:"minimum_daily"`
	ReferenceDays         int       `json:"reference_days"`
	WaitingDays           int       `json:"waiting_days"`
	MaxPayableDays        int       `json:"max_payable_days"`
	SurchargeMinLeaveDays int       `json:"surcharge_min_leave_days"`
	IllnessTypes          []string  `json:"illness_types"`
	Tiers                 []TierDTO `json:"tiers"`
}

// TierDTO is one column of the percentage table. MaxDays is omitted for
// the open-ended last tier.
type TierDTO struct {
	MaxDays *int           `json:"max_days,omitempty"`
	Rates   map[string]int `json:"rates"`
}

// ErrorResponse is returned for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func (r CalculateRequest) toInputs() (subsidy.Inputs, error) {
	if r.ReferenceRemuneration == nil {
		return subsidy.Inputs{}, &missingFieldError{field: subsidy.FieldReferenceRemuneration}
	}
	if r.LeaveDays == nil {
		return subsidy.Inputs{}, &missingFieldError{field: subsidy.FieldLeaveDays}
	}

	illness, err := subsidy.ParseIllnessType(r.IllnessType)
	if err != nil {
		return subsidy.Inputs{}, err
	}

	in := subsidy.NewInputs(*r.ReferenceRemuneration, *r.LeaveDays, r.QualifyingContributions,
		subsidy.WithIllness(illness),
		subsidy.WithDependents(r.Dependents))
	if err := in.Validate(); err != nil {
		return subsidy.Inputs{}, err
	}
	return in, nil
}

// NewCalculationDTO converts a calculation result into its API representation.
func NewCalculationDTO(id string, res subsidy.Result) CalculationDTO {
	dto := CalculationDTO{
		CalculationID: id,
		Eligible:      res.Eligible,
		Summary:       subsidy.Lines(res),
	}
	if !res.Eligible {
		dto.Reason = string(res.Reason)
		return dto
	}

	b := res.Breakdown
	dto.Breakdown = &BreakdownDTO{
		IllnessType:      b.IllnessType.String(),
		DailyReference:   b.DailyReference.Round(4).InexactFloat64(),
		Percentage:       b.Percentage,
		PayableDays:      b.PayableDays,
		BaseDaily:        b.BaseDaily.Round(4).InexactFloat64(),
		SurchargePercent: b.SurchargePercent,
		FinalDaily:       b.FinalDaily.Round(4).InexactFloat64(),
		FloorApplied:     b.FloorApplied,
		Total:            b.Total.Round(2).InexactFloat64(),
	}
	return dto
}

// NewRulesDTO describes the current rule set.
func NewRulesDTO() RulesDTO {
	dto := RulesDTO{
		IAS:                   subsidy.IAS().InexactFloat64(),
		MinimumDaily:          subsidy.MinimumDaily().InexactFloat64(),
		ReferenceDays:         subsidy.ReferenceDays,
		WaitingDays:           subsidy.WaitingDays,
		MaxPayableDays:        subsidy.MaxPayableDays,
		SurchargeMinLeaveDays: subsidy.SurchargeMinLeaveDays,
	}
	for _, t := range subsidy.IllnessTypes {
		dto.IllnessTypes = append(dto.IllnessTypes, t.String())
	}
	for _, tier := range subsidy.Tiers() {
		td := TierDTO{Rates: make(map[string]int, len(tier.Rates))}
		if tier.MaxDays > 0 {
			maxDays := tier.MaxDays
			td.MaxDays = &maxDays
		}
		for illness, rate := range tier.Rates {
			td.Rates[illness.String()] = rate
		}
		dto.Tiers = append(dto.Tiers, td)
	}
	return dto
}
