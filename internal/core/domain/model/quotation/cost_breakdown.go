package quotation

import (
	"errors"
	"fmt"

	"freightmarket/internal/pkg/errs"
	"freightmarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCostBreakdownIsNotConstructed is returned when a CostBreakdown was not
// created through NewCostBreakdown.
var ErrCostBreakdownIsNotConstructed = errors.New(
	"CostBreakdown must be created via NewCostBreakdown constructor",
)

// CostBreakdown is the money value object of a quotation: the four cost
// segments of a freight movement plus the quoting currency.
//
// The total price of a quotation is never stored independently; it is always
// Total(), the sum of the segments rounded to two decimal places, so the
// "total equals rounded sum of the breakdown" invariant holds by construction.
type CostBreakdown struct {
	preCarriage       decimal.Decimal
	mainCarriage      decimal.Decimal
	onCarriage        decimal.Decimal
	additionalCharges decimal.Decimal
	currency          string

	guard guard.ConstructorGuard
}

// NewCostBreakdown creates a cost breakdown. All segments must be
// non-negative; currency must be a three-letter uppercase code.
func NewCostBreakdown(
	preCarriage, mainCarriage, onCarriage, additionalCharges decimal.Decimal,
	currency string,
) (CostBreakdown, error) {
	if err := errors.Join(
		validateSegment("preCarriage", preCarriage),
		validateSegment("mainCarriage", mainCarriage),
		validateSegment("onCarriage", onCarriage),
		validateSegment("additionalCharges", additionalCharges),
		validateCurrency(currency),
	); err != nil {
		return CostBreakdown{}, err
	}

	return CostBreakdown{
		preCarriage:       preCarriage,
		mainCarriage:      mainCarriage,
		onCarriage:        onCarriage,
		additionalCharges: additionalCharges,
		currency:          currency,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func validateSegment(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%s is negative", v))
	}
	return nil
}

func validateCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a three-letter currency code", currency))
		}
	}
	return nil
}

// Validate ensures the CostBreakdown was created through NewCostBreakdown.
func (b CostBreakdown) Validate() error {
	return b.guard.Validate(ErrCostBreakdownIsNotConstructed)
}

// PreCarriage returns the cost of moving cargo to the port of loading.
func (b CostBreakdown) PreCarriage() decimal.Decimal {
	return b.preCarriage
}

// MainCarriage returns the cost of the main transport leg.
func (b CostBreakdown) MainCarriage() decimal.Decimal {
	return b.mainCarriage
}

// OnCarriage returns the cost of the final delivery leg.
func (b CostBreakdown) OnCarriage() decimal.Decimal {
	return b.onCarriage
}

// AdditionalCharges returns surcharges outside the three carriage legs.
func (b CostBreakdown) AdditionalCharges() decimal.Decimal {
	return b.additionalCharges
}

// Currency returns the three-letter currency code.
func (b CostBreakdown) Currency() string {
	return b.currency
}

// Total returns the sum of all segments rounded to two decimal places.
// This is the quotation's total price.
func (b CostBreakdown) Total() decimal.Decimal {
	return b.preCarriage.
		Add(b.mainCarriage).
		Add(b.onCarriage).
		Add(b.additionalCharges).
		Round(2)
}
