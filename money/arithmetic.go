package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// places is the number of decimal places kept by the arithmetic
// and percentage operations.
const places = 2

// ratioPlaces is the number of decimal places kept by PercentageOf.
const ratioPlaces = 3

var hundred = decimal.NewFromInt(100)

// Add returns m + other, rounded to two decimal places.
func (m Money) Add(other Operand) (Money, error) {
	o, err := m.sameCurrency(other, "add")
	if err != nil {
		return Money{}, err
	}

	return m.rounded(m.amount.Add(o.amount), m.negZero && o.negZero), nil
}

// Subtract returns m - other, rounded to two decimal places.
func (m Money) Subtract(other Operand) (Money, error) {
	o, err := m.sameCurrency(other, "subtract")
	if err != nil {
		return Money{}, err
	}

	return m.rounded(
		m.amount.Sub(o.amount),
		m.negZero && o.IsZero() && !o.negZero,
	), nil
}

// Percentage returns percent% of m, rounded to two decimal places.
//
// The percentage operations have no error result: the zero Money
// yields the zero Money. percent is expected within the range
// accepted by FromDecimal.
func (m Money) Percentage(percent decimal.Decimal) Money {
	return m.rounded(m.percent(percent), m.percentNegZero(percent))
}

// ApplyDiscount returns m lowered by percent%,
// rounded to two decimal places.
func (m Money) ApplyDiscount(percent decimal.Decimal) Money {
	return m.rounded(
		m.amount.Sub(m.percent(percent)),
		m.negZero && !m.percentNegZero(percent),
	)
}

// ApplyRise returns m raised by percent%,
// rounded to two decimal places.
func (m Money) ApplyRise(percent decimal.Decimal) Money {
	return m.rounded(
		m.amount.Add(m.percent(percent)),
		m.negZero && m.percentNegZero(percent),
	)
}

// PercentageOf returns how many percent of other m is,
// as a decimal string rounded to three decimal places.
//
// The currencies are not checked: a ratio between two
// different currencies is allowed.
func (m Money) PercentageOf(other Operand) (string, error) {
	o, err := resolve(other)
	if err != nil {
		return "", fmt.Errorf("percentage of: %w", err)
	}

	if o.amount.IsZero() {
		return "", fmt.Errorf(
			"%w: percentage of zero %s",
			ErrDivisionByZero,
			o.currency,
		)
	}

	return m.amount.Mul(hundred).DivRound(o.amount, ratioPlaces).String(), nil
}

// Negated returns m with the sign flipped.
// Negating zero gives a negative zero and the other way around.
func (m Money) Negated() Money {
	if m.amount.IsZero() {
		return Money{
			amount:   m.amount,
			negZero:  !m.negZero,
			currency: m.currency,
		}
	}

	return Money{
		amount:   m.amount.Neg(),
		currency: m.currency,
	}
}

// percent returns m * percent / 100, unrounded.
func (m Money) percent(percent decimal.Decimal) decimal.Decimal {
	return m.amount.Mul(percent).Shift(-2)
}

// percentNegZero reports the sign of m * percent / 100
// when that product is zero.
func (m Money) percentNegZero(percent decimal.Decimal) bool {
	return m.IsNegative() != percent.IsNegative()
}

// rounded returns a new Money in the currency of m holding d rounded
// half away from zero. Negative values rounding to zero keep the sign,
// an exact zero is negative when negZero is set.
func (m Money) rounded(d decimal.Decimal, negZero bool) Money {
	r := d.Round(places)

	return Money{
		amount:   r,
		negZero:  r.IsZero() && (d.Sign() < 0 || d.IsZero() && negZero),
		currency: m.currency,
	}
}
