package subsidy

import "fmt"

// Lines renders a Result as human-readable text: one line for the total,
// then a surcharge note and a minimum-floor note when they apply. An
// ineligible Result renders as a single explanatory line.
func Lines(r Result) []string {
	if !r.Eligible {
		return []string{ineligibleMessage(r.Reason)}
	}

	b := r.Breakdown
	lines := []string{
		fmt.Sprintf("Total subsidy payable: €%s", b.Total.StringFixed(2)),
	}
	if b.HasSurcharge() {
		lines = append(lines, fmt.Sprintf(
			"Surcharge applied: +%d%% on the daily value for dependents in care.", b.SurchargePercent))
	}
	if b.FloorApplied {
		lines = append(lines, fmt.Sprintf(
			"Daily value raised to the legal minimum (€%s).", minimumDaily.StringFixed(2)))
	}
	return lines
}

func ineligibleMessage(reason IneligibilityReason) string {
	switch reason {
	case ReasonInsufficientContributions:
		return "Not eligible for sickness subsidy (minimum contribution record not met)."
	default:
		return "Not eligible for sickness subsidy."
	}
}
