package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a type storing information
// about a monetary amount in a given currency.
//
// The zero value is not a valid Money: it has no currency.
// Use one of the constructors to create values.
type Money struct {
	// amount in its largest denomination, eg. 12.5 for 12 liras 50 kuruş.
	amount decimal.Decimal

	// negZero records a "-0" input. decimal.Decimal has no signed zero
	// and the sign must survive for IsNegative.
	negZero bool

	// shorthand for the currency.
	currency string
}

// FromMoney creates a new Money from another Money,
// re-parsing its amount from the decimal string form.
func FromMoney(m Money) (Money, error) {
	if !m.IsValid() {
		return Money{}, fmt.Errorf("%w: uninitialized money", ErrInvalidAmount)
	}

	return parse(m.Amount(), m.currency)
}

// FromRecord creates a new Money from its canonical record form.
// Both the amount and the currency must be set.
func FromRecord(r Record) (Money, error) {
	if r.Amount == "" {
		return Money{}, fmt.Errorf("%w: record has no amount", ErrInvalidAmount)
	}

	if r.Currency == "" {
		return Money{}, fmt.Errorf("%w: record has no currency", ErrInvalidAmount)
	}

	return parse(r.Amount, r.Currency)
}

// FromAmount creates a new Money from a decimal string.
// An empty currency code selects DefaultCurrency.
//
// Amounts of 10^1001 or more, or with more than 1000 decimal
// places, are rejected with ErrInvalidAmount.
func FromAmount(amount, currencyCode string) (Money, error) {
	return parse(amount, orDefault(currencyCode))
}

// FromInt creates a new Money from an integer amount.
// An empty currency code selects DefaultCurrency.
func FromInt(amount int64, currencyCode string) Money {
	return Money{
		amount:   decimal.NewFromInt(amount),
		currency: orDefault(currencyCode),
	}
}

// FromFloat creates a new Money from a float amount.
// NaN and infinite values are rejected.
func FromFloat(amount float64, currencyCode string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf(
			"%w: float value %v",
			ErrInvalidAmount,
			amount,
		)
	}

	d := decimal.NewFromFloat(amount)

	if !inRange(d) {
		return Money{}, fmt.Errorf(
			"%w: float value %v out of range",
			ErrInvalidAmount,
			amount,
		)
	}

	return Money{
		amount:   d,
		negZero:  amount == 0 && math.Signbit(amount),
		currency: orDefault(currencyCode),
	}, nil
}

// FromDecimal creates a new Money from a decimal amount.
// An empty currency code selects DefaultCurrency.
func FromDecimal(amount decimal.Decimal, currencyCode string) (Money, error) {
	if !inRange(amount) {
		return Money{}, fmt.Errorf(
			"%w: decimal with exponent %d out of range",
			ErrInvalidAmount,
			amount.Exponent(),
		)
	}

	return Money{
		amount:   amount,
		currency: orDefault(currencyCode),
	}, nil
}

// New creates a new Money by inspecting the shape of v:
//
// - Money or *Money, see FromMoney.
//
// - Record, *Record or a map with "amount" and "currency" keys, see FromRecord.
//
// - a string, json.Number, integer, float or decimal.Decimal amount,
// in the optional currency (DefaultCurrency when omitted).
//
// The currency argument is ignored for Money and record shapes,
// their own currency is used.
func New(v any, currencyCode ...string) (Money, error) {
	var code string
	if len(currencyCode) > 0 {
		code = currencyCode[0]
	}

	switch t := v.(type) {
	case Money:
		return FromMoney(t)

	case *Money:
		if t == nil {
			return Money{}, fmt.Errorf("%w: nil money", ErrInvalidAmount)
		}

		return FromMoney(*t)

	case Record:
		return FromRecord(t)

	case *Record:
		if t == nil {
			return Money{}, fmt.Errorf("%w: nil record", ErrInvalidAmount)
		}

		return FromRecord(*t)

	case map[string]any:
		r, ok := recordFromMap(t)
		if !ok {
			return Money{}, fmt.Errorf(
				"%w: map is not a money record",
				ErrInvalidAmount,
			)
		}

		return FromRecord(r)

	case float64:
		return FromFloat(t, code)

	case decimal.Decimal:
		return FromDecimal(t, code)
	}

	s, ok := amountString(v)
	if !ok {
		return Money{}, fmt.Errorf(
			"%w: unsupported type %T",
			ErrInvalidAmount,
			v,
		)
	}

	return FromAmount(s, code)
}

// Must returns Money if err is nil and panics otherwise.
func Must(m Money, err error) Money {
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the amount as a decimal string, eg. "12.5".
func (m Money) Amount() string {
	return m.amount.String()
}

// Float64 returns the amount as a float64.
// Very large or very precise amounts lose precision.
func (m Money) Float64() float64 {
	if m.negZero {
		return math.Copysign(0, -1)
	}

	f, _ := m.amount.Float64()

	return f
}

// Decimal returns the amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Symbol returns the display symbol of the currency.
func (m Money) Symbol() string {
	return SymbolOf(m.currency)
}

// IsValid returns false for the zero value.
func (m Money) IsValid() bool {
	return m.currency != ""
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is negative.
// A "-0" amount is negative.
func (m Money) IsNegative() bool {
	return m.amount.Sign() < 0 || m.negZero
}

// IsPositive reports whether the amount is not negative,
// so a zero amount is positive.
func (m Money) IsPositive() bool {
	return !m.IsNegative()
}

// Equal reports whether m and other have the same
// currency and numerically equal amounts.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func parse(amount, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf(
			"%w: string \"%s\"",
			ErrInvalidAmount,
			amount,
		)
	}

	if !inRange(d) {
		return Money{}, fmt.Errorf(
			"%w: string \"%s\" out of range",
			ErrInvalidAmount,
			amount,
		)
	}

	return Money{
		amount:   d,
		negZero:  d.IsZero() && strings.HasPrefix(amount, "-"),
		currency: currencyCode,
	}, nil
}

// maxExponent bounds amounts to less than 10^(maxExponent+1) in
// magnitude and to maxExponent decimal places. The decimal string
// of an amount like "1e999999999" would have a billion digits.
const maxExponent = 1000

func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())

	return exp >= -maxExponent && exp+int64(d.NumDigits()) <= maxExponent+1
}

func orDefault(currencyCode string) string {
	if currencyCode == "" {
		return DefaultCurrency
	}

	return currencyCode
}

// amountString converts the scalar amount shapes accepted
// by New and the record decoders to a decimal string.
func amountString(v any) (string, bool) {
	const base = 10

	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case decimal.Decimal:
		if !inRange(t) {
			return "", false
		}

		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.FormatInt(int64(t), base), true
	case int8:
		return strconv.FormatInt(int64(t), base), true
	case int16:
		return strconv.FormatInt(int64(t), base), true
	case int32:
		return strconv.FormatInt(int64(t), base), true
	case int64:
		return strconv.FormatInt(t, base), true
	case uint:
		return strconv.FormatUint(uint64(t), base), true
	case uint8:
		return strconv.FormatUint(uint64(t), base), true
	case uint16:
		return strconv.FormatUint(uint64(t), base), true
	case uint32:
		return strconv.FormatUint(uint64(t), base), true
	case uint64:
		return strconv.FormatUint(t, base), true
	default:
		return "", false
	}
}
