package salary

import (
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
)

const (
	// MaxDecimalPlaces is the finest scale accepted on any input.
	MaxDecimalPlaces = 6

	maxExponent = 15
)

var (
	// MaxAmount caps money inputs and targets at 10^15 rupees.
	MaxAmount = decimal.New(1, maxExponent)

	maxPercent = decimal.NewFromInt(100)
)

// ValidateAmount rejects negative money inputs. The calculators accept them,
// but the API and CLI treat them as typos.
func ValidateAmount(field string, v decimal.Decimal) error {
	if err := validateSize(field, v); err != nil {
		return err
	}
	if v.IsNegative() {
		return &generic.ValidationError{Field: field, Value: v.String(), Message: "must not be negative"}
	}
	return nil
}

// ValidateTarget only bounds size. Any sign is accepted; targets the search
// cannot reach resolve to a search bound.
func ValidateTarget(field string, v decimal.Decimal) error {
	return validateSize(field, v)
}

// ValidatePercent requires a Basic+DA share in [0, 100].
func ValidatePercent(field string, v decimal.Decimal) error {
	if err := validateSize(field, v); err != nil {
		return err
	}
	if v.IsNegative() || v.GreaterThan(maxPercent) {
		return &generic.ValidationError{Field: field, Value: v.String(), Message: "must be between 0 and 100"}
	}
	return nil
}

// validateSize looks at the exponent before comparing, since comparing
// decimals rescales them to a common exponent. Value is left out of these
// errors because printing the number is itself unbounded.
func validateSize(field string, v decimal.Decimal) error {
	if v.Exponent() < -MaxDecimalPlaces {
		return &generic.ValidationError{Field: field, Message: "must have at most 6 decimal places"}
	}
	if v.Exponent() > maxExponent || v.Abs().GreaterThan(MaxAmount) {
		return &generic.ValidationError{Field: field, Message: "must not exceed 1e15"}
	}
	return nil
}
