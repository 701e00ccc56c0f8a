package money

import (
	"github.com/shopspring/decimal"
)

// CentPlaces is the number of decimal places money is rendered with.
const CentPlaces int32 = 2

// Money is a debt balance or payment amount backed by an exact decimal.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses an amount such as "472.50"
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MustMoney parses an amount and panics on error. Intended for tests and constants.
func MustMoney(value string) Money {
	return Money{decimal.RequireFromString(value)}
}

// Round rounds to whole cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(CentPlaces)}
}

// RoundTo rounds to an arbitrary number of places. The simulator uses it to keep
// intermediate balances at a bounded working precision.
func (m Money) RoundTo(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// AccrueInterest returns the amount after one period of interest at periodRate.
func (m Money) AccrueInterest(periodRate decimal.Decimal) Money {
	return Money{m.Decimal.Add(m.Decimal.Mul(periodRate))}
}

// ClampZero returns zero for negative amounts.
func (m Money) ClampZero() Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the smaller of two amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Zero returns a zero amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Sum adds a list of amounts.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// String renders the amount with exactly two decimals, e.g. "472.50".
func (m Money) String() string {
	return m.Decimal.StringFixed(CentPlaces)
}

// Dollars renders the amount with a dollar sign, e.g. "$472.50".
func (m Money) Dollars() string {
	return "$" + m.String()
}
