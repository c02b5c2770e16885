package kernel

import (
	"fmt"
	"math"

	"lastmile/internal/pkg/errs"
)

// Money is a non-negative monetary amount, used for the merchandise value and
// the delivery fee of an order. The remote API carries amounts as plain JSON
// numbers, so Money wraps a float64 rather than a minor-unit integer.
//
// The zero value is a valid zero amount.
type Money struct {
	amount float64
}

// NewMoney creates a Money value. The amount must be finite and non-negative.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount as a float64, the form the wire format expects.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
