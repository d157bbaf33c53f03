package subsidy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/subsidy-engine/subsidy"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    subsidy.Inputs
		field string
		want  error
	}{
		{
			name:  "negative remuneration",
			in:    subsidy.NewInputs(euros("-0.01"), 10, true),
			field: subsidy.FieldReferenceRemuneration,
			want:  subsidy.ErrNegativeRemuneration,
		},
		{
			name:  "remuneration above maximum",
			in:    subsidy.NewInputs(euros("1000000000000.01"), 10, true),
			field: subsidy.FieldReferenceRemuneration,
			want:  subsidy.ErrRemunerationOutOfRange,
		},
		{
			name:  "remuneration with huge exponent",
			in:    subsidy.NewInputs(euros("1e2147483640"), 40, true),
			field: subsidy.FieldReferenceRemuneration,
			want:  subsidy.ErrRemunerationOutOfRange,
		},
		{
			name:  "remuneration with huge negative exponent",
			in:    subsidy.NewInputs(euros("-1e-2147483640"), 40, true),
			field: subsidy.FieldReferenceRemuneration,
			want:  subsidy.ErrRemunerationOutOfRange,
		},
		{
			name:  "negative leave days",
			in:    subsidy.NewInputs(euros("100"), -1, true),
			field: subsidy.FieldLeaveDays,
			want:  subsidy.ErrNegativeLeaveDays,
		},
		{
			name:  "unknown illness",
			in:    subsidy.NewInputs(euros("100"), 10, true, subsidy.WithIllness("flu")),
			field: subsidy.FieldIllnessType,
			want:  subsidy.ErrUnknownIllnessType,
		},
		{
			name:  "negative dependents",
			in:    subsidy.NewInputs(euros("100"), 10, true, subsidy.WithDependents(-2)),
			field: subsidy.FieldDependents,
			want:  subsidy.ErrNegativeDependents,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, subsidy.IsInputError(err))

			var ie *subsidy.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestValidate_AcceptsBoundaryValues(t *testing.T) {
	in := subsidy.NewInputs(euros("0"), 0, false)
	assert.NoError(t, in.Validate())

	in = subsidy.Inputs{ReferenceRemuneration: euros("1")} // zero illness type
	assert.NoError(t, in.Validate())

	in = subsidy.NewInputs(subsidy.MaxRemuneration(), 400, true)
	assert.NoError(t, in.Validate())

	in = subsidy.NewInputs(euros("0.5e-31"), 10, true)
	assert.NoError(t, in.Validate())
}

func TestValidate_OutOfRangeErrorStaysCompact(t *testing.T) {
	// GIVEN: A tiny request body that expands to an enormous number
	in := subsidy.NewInputs(euros("1e20000000"), 40, true)

	// WHEN: Validating it
	err := in.Validate()

	// THEN: It is rejected and the message does not spell the number out
	require.ErrorIs(t, err, subsidy.ErrRemunerationOutOfRange)
	assert.Less(t, len(err.Error()), 200)
	assert.Contains(t, err.Error(), "1e20000000")
}

func TestParseIllnessType(t *testing.T) {
	for input, want := range map[string]subsidy.IllnessType{
		"common":           subsidy.IllnessCommon,
		"":                 subsidy.IllnessCommon,
		" Hospitalization": subsidy.IllnessHospitalization,
		"TUBERCULOSIS":     subsidy.IllnessTuberculosis,
	} {
		got, err := subsidy.ParseIllnessType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := subsidy.ParseIllnessType("influenza")
	assert.True(t, errors.Is(err, subsidy.ErrUnknownIllnessType))
	assert.True(t, subsidy.IsInputError(err))
}

func TestIsInputError_OtherErrors(t *testing.T) {
	assert.False(t, subsidy.IsInputError(errors.New("boom")))
	assert.False(t, subsidy.IsInputError(nil))
}
