/*
errors.go - Error types for the calculators

ERROR CATEGORIES:
  1. Unsupported variant - an unknown sector, calculation type or other
     discriminator. Never silently mapped to a default formula.
  2. Invalid input - negative money, negative service years, rates outside
     0..100. The web layer is expected to catch these first; the
     calculators fail fast rather than produce negative amounts.

NOT AN ERROR:
  Ineligibility (too few service years, salary above the insurance ceiling)
  is a normal result with Eligible=false and a Reason.

USAGE:
  if errors.Is(err, statutory.ErrUnsupportedVariant) { ... }

  var ie *statutory.InputError
  if errors.As(err, &ie) { log(ie.Field) }
*/
package statutory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnsupportedVariant is returned for a discriminator value no rule set handles.
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrInvalidInput is returned for inputs outside the calculator's domain.
	ErrInvalidInput = errors.New("invalid input")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// VariantError names the discriminator that could not be dispatched.
type VariantError struct {
	Kind  string // e.g. "sector", "calculation type"
	Value string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Kind, e.Value)
}

func (e *VariantError) Unwrap() error {
	return ErrUnsupportedVariant
}

// InputError names the offending parameter.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedVariant) || errors.Is(err, ErrInvalidInput)
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return &InputError{Field: field, Value: v.String(), Reason: "must not be negative"}
	}
	return nil
}

func nonNegativeInt(field string, v int) error {
	if v < 0 {
		return &InputError{Field: field, Value: fmt.Sprint(v), Reason: "must not be negative"}
	}
	return nil
}

func validRate(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return &InputError{Field: field, Value: v.String(), Reason: "must be between 0 and 100 percent"}
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
