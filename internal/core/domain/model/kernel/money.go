package kernel

import (
	"fmt"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or ZeroMoney",
)

// Money is a value object for monetary amounts. It wraps a decimal so that
// prices and totals keep exact cents regardless of how often they are summed
// or multiplied. Amounts are never negative: a price below zero has no meaning
// in this domain.
//
// The zero value of Money is invalid and must be constructed via NewMoney,
// MoneyFromString, or ZeroMoney.
//
// Money is immutable; arithmetic methods return new values.
//
// Example usage:
//
//	price, _ := kernel.MoneyFromString("80.00")
//	lineTotal := price.Mul(2)          // 160.00
//	total := lineTotal.Add(other)      // sum of snapshots
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// such as "80" or "49.90". Returns an error if the string is not a valid
// non-negative decimal.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// ZeroMoney returns a valid Money value of zero.
// It is the identity element for Add and the natural starting point for sums.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Mul returns the Money value multiplied by a quantity.
// Used to derive line totals from a unit price snapshot.
func (m Money) Mul(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}
}

// IsEqual compares two Money values by amount, ignoring exponent
// representation, so "80" and "80.00" are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with two decimal places, e.g. "210.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
