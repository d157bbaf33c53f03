package subsidy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/subsidy-engine/subsidy"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func euros(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func eligible(t *testing.T, in subsidy.Inputs) subsidy.Breakdown {
	t.Helper()
	require.NoError(t, in.Validate())
	res := subsidy.Calculate(in)
	require.True(t, res.Eligible, "expected an eligible result")
	return res.Breakdown
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, euros(want).Equal(got), "want %s, got %s", want, got.String())
}

// =============================================================================
// ELIGIBILITY
// =============================================================================

func TestCalculate_IneligibleWithoutContributions(t *testing.T) {
	// GIVEN: Any combination of inputs without qualifying contributions
	// THEN: The result is the ineligible variant and nothing is computed

	cases := []subsidy.Inputs{
		subsidy.NewInputs(euros("3000"), 40, false),
		subsidy.NewInputs(euros("0"), 0, false),
		subsidy.NewInputs(euros("90000"), 400, false, subsidy.WithIllness(subsidy.IllnessTuberculosis)),
		subsidy.NewInputs(euros("1200"), 31, false, subsidy.WithIllness(subsidy.IllnessHospitalization), subsidy.WithDependents(3)),
	}

	for _, in := range cases {
		res := subsidy.Calculate(in)
		assert.False(t, res.Eligible)
		assert.Equal(t, subsidy.ReasonInsufficientContributions, res.Reason)
		assert.True(t, res.Breakdown.Total.IsZero(), "ineligible result must carry no amount")
		assert.Zero(t, res.Breakdown.PayableDays)
	}
}

// =============================================================================
// END TO END
// =============================================================================

func TestCalculate_CommonIllnessWithOneDependent(t *testing.T) {
	// GIVEN: 3000 over six months, 40 days of common illness, one dependent
	// WHEN: Calculating
	// THEN: 16.67/day reference, 60% rate = 10/day, +5% = 10.5/day, 37 paid days

	b := eligible(t, subsidy.NewInputs(euros("3000"), 40, true, subsidy.WithDependents(1)))

	assert.Equal(t, "16.67", b.DailyReference.StringFixed(2))
	assert.Equal(t, 60, b.Percentage)
	assert.Equal(t, 37, b.PayableDays)
	assertDecimal(t, "10", b.BaseDaily)
	assert.Equal(t, 5, b.SurchargePercent)
	assertDecimal(t, "10.5", b.FinalDaily)
	assert.False(t, b.FloorApplied)
	assert.Equal(t, "388.50", b.Total.StringFixed(2))
}

func TestCalculate_HospitalizationLongLeave(t *testing.T) {
	// GIVEN: 9000 over six months (50/day), 400 days in hospital, two dependents
	// THEN: 80% rate, +10%, capped at 365 paid days

	b := eligible(t, subsidy.NewInputs(euros("9000"), 400, true,
		subsidy.WithIllness(subsidy.IllnessHospitalization),
		subsidy.WithDependents(2)))

	assert.Equal(t, 80, b.Percentage)
	assert.Equal(t, 365, b.PayableDays)
	assertDecimal(t, "40", b.BaseDaily)
	assertDecimal(t, "44", b.FinalDaily)
	assertDecimal(t, "16060", b.Total)
}

func TestCalculate_Tuberculosis(t *testing.T) {
	// GIVEN: 5400 over six months (30/day), 10 days of tuberculosis
	// THEN: Full rate, no waiting period, no surcharge under 31 days

	b := eligible(t, subsidy.NewInputs(euros("5400"), 10, true,
		subsidy.WithIllness(subsidy.IllnessTuberculosis),
		subsidy.WithDependents(4)))

	assert.Equal(t, 100, b.Percentage)
	assert.Equal(t, 10, b.PayableDays)
	assert.Equal(t, 0, b.SurchargePercent)
	assertDecimal(t, "300", b.Total)
}

// =============================================================================
// MINIMUM FLOOR
// =============================================================================

func TestCalculate_MinimumFloorWithZeroRemuneration(t *testing.T) {
	// GIVEN: No remuneration at all
	// THEN: The daily value is raised to IAS x 0.3 / 30 and the flag is set

	b := eligible(t, subsidy.NewInputs(euros("0"), 20, true))

	assertDecimal(t, "5.222", subsidy.MinimumDaily())
	assertDecimal(t, "5.222", b.FinalDaily)
	assert.True(t, b.FloorApplied)
	assert.Equal(t, 17, b.PayableDays)
	assertDecimal(t, "88.774", b.Total)
}

func TestCalculate_FloorNotBindingAtExactMinimum(t *testing.T) {
	// GIVEN: Tuberculosis at 100% on 939.96, a daily value of exactly 5.222

	b := eligible(t, subsidy.NewInputs(euros("939.96"), 5, true,
		subsidy.WithIllness(subsidy.IllnessTuberculosis)))

	assertDecimal(t, "5.222", b.SurchargedDaily)
	assert.False(t, b.FloorApplied, "floor only binds when strictly below the minimum")
	assertDecimal(t, "26.11", b.Total)
}

func TestCalculate_SurchargeCanLiftAboveFloor(t *testing.T) {
	// GIVEN: A base daily value just below the minimum
	// WHEN: The 10% surcharge applies
	// THEN: The surcharged value clears the floor on its own

	b := eligible(t, subsidy.NewInputs(euros("900"), 31, true,
		subsidy.WithIllness(subsidy.IllnessTuberculosis),
		subsidy.WithDependents(2)))

	assertDecimal(t, "5", b.BaseDaily)
	assertDecimal(t, "5.5", b.FinalDaily)
	assert.False(t, b.FloorApplied)
}

// =============================================================================
// INVARIANTS
// =============================================================================

func TestCalculate_Idempotent(t *testing.T) {
	in := subsidy.NewInputs(euros("4321.09"), 77, true,
		subsidy.WithIllness(subsidy.IllnessHospitalization),
		subsidy.WithDependents(1))

	first := subsidy.Calculate(in)
	second := subsidy.Calculate(in)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calculation differs (-first +second):\n%s", diff)
	}
}

func TestCalculate_TotalNeverNegative(t *testing.T) {
	for _, illness := range subsidy.IllnessTypes {
		for _, days := range []int{0, 1, 3, 4, 30, 31, 90, 91, 365, 366, 1000} {
			for _, deps := range []int{0, 1, 2, 7} {
				b := eligible(t, subsidy.NewInputs(euros("0"), days, true,
					subsidy.WithIllness(illness), subsidy.WithDependents(deps)))
				assert.False(t, b.Total.IsNegative(), "%s/%d/%d", illness, days, deps)
				assert.True(t, b.FinalDaily.GreaterThanOrEqual(subsidy.MinimumDaily()))
			}
		}
	}
}

func TestCalculate_ZeroValueIllnessIsCommon(t *testing.T) {
	// GIVEN: Inputs built as a literal with no illness type
	in := subsidy.Inputs{
		ReferenceRemuneration:   euros("1800"),
		LeaveDays:               10,
		QualifyingContributions: true,
	}
	explicit := in
	explicit.IllnessType = subsidy.IllnessCommon

	got := eligible(t, in)
	want := eligible(t, explicit)

	assert.Equal(t, subsidy.IllnessCommon, got.IllnessType)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("zero illness type differs from common (-want +got):\n%s", diff)
	}
}
