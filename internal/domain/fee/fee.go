package fee

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

// ===============================
// Fee type
// ===============================

type Type string

const (
	TypeMonthly   Type = "MONTHLY"
	TypeQuarterly Type = "QUARTERLY"
	TypeYearly    Type = "YEARLY"
	TypeOneTime   Type = "ONE_TIME"
	TypeAdmission Type = "ADMISSION"
	TypeOther     Type = "OTHER"
)

const DefaultType = TypeMonthly

func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultType, nil
	}
	t := Type(strings.ToUpper(s))
	switch t {
	case TypeMonthly, TypeQuarterly, TypeYearly, TypeOneTime, TypeAdmission, TypeOther:
		return t, nil
	}
	return "", httperr.Validation(
		"Invalid fee type",
		httperr.FieldError{Field: "type", Issue: "invalid_value"},
	)
}

// ===============================
// Discount
// ===============================

type DiscountType string

const (
	DiscountNone       DiscountType = ""
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
)

func ParseDiscountType(s string) (DiscountType, error) {
	d := DiscountType(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DiscountNone, DiscountPercentage, DiscountFlat:
		return d, nil
	}
	return "", httperr.Validation(
		"Invalid discount type",
		httperr.FieldError{Field: "discountType", Issue: "invalid_value"},
	)
}

var hundred = decimal.NewFromInt(100)

// ===============================
// Amounts
// ===============================

type Amounts struct {
	Original        decimal.Decimal
	Paid            decimal.Decimal
	DiscountType    DiscountType
	DiscountApplied decimal.Decimal
}

// Validate enforces 0 <= paid <= original and a sane discount.
func (a Amounts) Validate() error {
	if a.Original.IsNegative() || a.Paid.IsNegative() {
		return httperr.InvalidAmounts("Amounts cannot be negative")
	}
	if a.Paid.GreaterThan(a.Original) {
		return httperr.InvalidAmounts("Amount paid cannot exceed the original amount")
	}
	if a.DiscountApplied.IsNegative() {
		return httperr.InvalidAmounts("Discount cannot be negative")
	}
	switch a.DiscountType {
	case DiscountPercentage:
		if a.DiscountApplied.GreaterThan(hundred) {
			return httperr.InvalidAmounts("Percentage discount cannot exceed 100")
		}
	case DiscountFlat:
		if a.DiscountApplied.GreaterThan(a.Original) {
			return httperr.InvalidAmounts("Flat discount cannot exceed the original amount")
		}
	case DiscountNone:
		if !a.DiscountApplied.IsZero() {
			return httperr.Validation(
				"discountType is required when a discount is applied",
				httperr.FieldError{Field: "discountType", Issue: "required"},
			)
		}
	}
	return nil
}
