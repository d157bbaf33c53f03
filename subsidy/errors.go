package subsidy

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNegativeRemuneration is returned when the reference remuneration is below zero.
	ErrNegativeRemuneration = errors.New("reference remuneration must not be negative")

	// ErrRemunerationOutOfRange is returned when the reference remuneration is
	// too large, or carries more precision than a money amount can.
	ErrRemunerationOutOfRange = errors.New("reference remuneration out of range")

	// ErrNegativeLeaveDays is returned when the leave duration is below zero.
	ErrNegativeLeaveDays = errors.New("leave days must not be negative")

	// ErrNegativeDependents is returned when the dependents count is below zero.
	ErrNegativeDependents = errors.New("dependents must not be negative")

	// ErrUnknownIllnessType is returned for an illness type outside the known set.
	ErrUnknownIllnessType = errors.New("unknown illness type")
)

// Field names used in InputError. They match the JSON field names of the API.
const (
	FieldReferenceRemuneration = "reference_remuneration"
	FieldLeaveDays             = "leave_days"
	FieldIllnessType           = "illness_type"
	FieldDependents            = "dependents"
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// InputError describes a single rejected input field.
type InputError struct {
	Field string
	Value any
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError returns true if err was caused by invalid calculation input.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// Validate checks the input contract of Calculate. Calculate itself does not
// validate; callers collecting untrusted input must call this first.
// Values are rejected, never clamped.
func (in Inputs) Validate() error {
	if err := validateRemuneration(in.ReferenceRemuneration); err != nil {
		return err
	}
	if in.LeaveDays < 0 {
		return &InputError{Field: FieldLeaveDays, Value: in.LeaveDays, Err: ErrNegativeLeaveDays}
	}
	if !in.IllnessType.Valid() {
		return &InputError{Field: FieldIllnessType, Value: string(in.IllnessType), Err: ErrUnknownIllnessType}
	}
	if in.Dependents < 0 {
		return &InputError{Field: FieldDependents, Value: in.Dependents, Err: ErrNegativeDependents}
	}
	return nil
}

// validateRemuneration checks the exponent before anything else: rendering or
// comparing a decimal with an extreme exponent expands its coefficient.
func validateRemuneration(r decimal.Decimal) error {
	if exp := r.Exponent(); exp > MaxRemunerationExponent || exp < -MaxRemunerationExponent {
		return &InputError{
			Field: FieldReferenceRemuneration,
			Value: fmt.Sprintf("%se%d", r.Coefficient(), exp),
			Err:   ErrRemunerationOutOfRange,
		}
	}
	if r.IsNegative() {
		return &InputError{Field: FieldReferenceRemuneration, Value: r, Err: ErrNegativeRemuneration}
	}
	if r.GreaterThan(maxRemuneration) {
		return &InputError{Field: FieldReferenceRemuneration, Value: r, Err: ErrRemunerationOutOfRange}
	}
	return nil
}
