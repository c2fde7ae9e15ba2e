package money

import (
	"github.com/purposeinplay/go-money/errors"
)

// Error codes carried by the package errors.
const (
	CodeInvalidAmount errors.ErrorCode = 1001 + iota
	CodeInvalidOperand
	CodeCurrencyMismatch
	CodeDivisionByZero
)

var (
	// ErrInvalidAmount is returned when an amount cannot be
	// parsed as a decimal number.
	ErrInvalidAmount = errors.New(
		errors.ErrorTypeInvalid,
		CodeInvalidAmount,
		"invalid amount",
	)

	// ErrInvalidOperand is returned when an operand is not
	// a valid Money shaped value.
	ErrInvalidOperand = errors.New(
		errors.ErrorTypeInvalid,
		CodeInvalidOperand,
		"invalid operand",
	)

	// ErrCurrencyMismatch is returned when two amounts
	// of different currencies are combined or compared.
	ErrCurrencyMismatch = errors.New(
		errors.ErrorTypeMismatch,
		CodeCurrencyMismatch,
		"currency mismatch",
	)

	// ErrDivisionByZero is returned when a ratio is taken
	// against a zero amount.
	ErrDivisionByZero = errors.New(
		errors.ErrorTypeInvalid,
		CodeDivisionByZero,
		"division by zero",
	)
)
