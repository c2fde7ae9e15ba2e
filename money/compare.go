package money

import (
	"fmt"
)

// Operand is a Money shaped value accepted by the binary operations.
// It is implemented by Money, *Money, Record and *Record.
type Operand interface {
	operand() (Money, bool)
}

// operand implements Operand.
func (m Money) operand() (Money, bool) {
	return m, m.IsValid()
}

// IsValidMoney reports whether x is a valid Money, or a record
// shape (Record, *Record, map with "amount" and "currency" keys)
// holding a currency and an amount that parses as a decimal.
func IsValidMoney(x any) bool {
	if m, ok := x.(map[string]any); ok {
		r, ok := recordFromMap(m)
		if !ok {
			return false
		}

		x = r
	}

	o, ok := x.(Operand)
	if !ok {
		return false
	}

	_, err := resolve(o)

	return err == nil
}

// IsSameCurrency reports whether other has exactly the same currency code.
func (m Money) IsSameCurrency(other Operand) bool {
	o, err := resolve(other)
	if err != nil {
		return false
	}

	return m.currency == o.currency
}

// Compare returns -1, 0 or 1 if m is less than, equal to
// or greater than other. Both must share the currency.
func (m Money) Compare(other Operand) (int, error) {
	o, err := m.sameCurrency(other, "compare")
	if err != nil {
		return 0, err
	}

	return m.amount.Cmp(o.amount), nil
}

// resolve returns the Money behind o or ErrInvalidOperand.
func resolve(o Operand) (Money, error) {
	switch t := o.(type) {
	case nil:
		return Money{}, fmt.Errorf("%w: nil operand", ErrInvalidOperand)
	case *Money:
		if t == nil {
			return Money{}, fmt.Errorf("%w: nil money", ErrInvalidOperand)
		}
	case *Record:
		if t == nil {
			return Money{}, fmt.Errorf("%w: nil record", ErrInvalidOperand)
		}
	}

	m, ok := o.operand()
	if !ok {
		return Money{}, fmt.Errorf(
			"%w: %T is not a valid money",
			ErrInvalidOperand,
			o,
		)
	}

	return m, nil
}

// sameCurrency resolves other and checks that both m and
// other are valid and share the currency code.
func (m Money) sameCurrency(other Operand, verb string) (Money, error) {
	if !m.IsValid() {
		return Money{}, fmt.Errorf(
			"%w: cannot %s on uninitialized money",
			ErrInvalidOperand,
			verb,
		)
	}

	o, err := resolve(other)
	if err != nil {
		return Money{}, fmt.Errorf("%s: %w", verb, err)
	}

	if m.currency != o.currency {
		return Money{}, fmt.Errorf(
			"%w: cannot %s %s and %s",
			ErrCurrencyMismatch,
			verb,
			m.currency,
			o.currency,
		)
	}

	return o, nil
}
