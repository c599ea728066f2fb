package kernel

import (
	"fmt"

	"pedidofacil/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits stored for every amount.
const MoneyScale = 2

// MaxMoney is the largest amount a decimal(10,2) column holds.
var MaxMoney = decimal.RequireFromString("99999999.99")

// Money is an immutable non-negative amount with at most two fraction digits.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates amount and returns it as Money.
//
// Rules:
//   - amount must not be negative
//   - amount must not carry more than two fraction digits
//   - amount must not exceed MaxMoney
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount.String(), "0.00", MaxMoney.StringFixed(MoneyScale))
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s has more than %d fraction digits", amount.String(), MoneyScale))
	}
	if amount.GreaterThan(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount.String(), "0.00", MaxMoney.StringFixed(MoneyScale))
	}
	return Money{amount: amount}, nil
}

// ParseMoney parses a decimal string such as "3500.00".
func ParseMoney(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustParseMoney is ParseMoney for literals known to be valid. It panics otherwise.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other. The result is not bounded by MaxMoney; callers that persist
// sums check the bound themselves.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Exceeds(limit decimal.Decimal) bool {
	return m.amount.GreaterThan(limit)
}

// Equal compares amounts numerically, so 50 and 50.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
