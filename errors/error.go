package errors

import (
	"errors"
	"fmt"
)

// promote standard library errors package functions.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

type (
	// ErrorType groups errors by the kind of failure,
	// eg. an invalid input or a currency mismatch.
	ErrorType string
	// ErrorCode represents application error codes.
	ErrorCode int
)

// Available error types.
const (
	ErrorTypeInvalid  ErrorType = "invalid"
	ErrorTypeMismatch ErrorType = "mismatch"
)

// Error object.
//
// Sentinel *Error values are compared by identity, so wrapping one with
// fmt.Errorf("%w: ...") keeps errors.Is working while the Type and Code
// stay reachable through errors.As.
type Error struct {
	Type    ErrorType
	Code    ErrorCode
	Details string
}

// New returns a new *Error.
func New(typ ErrorType, code ErrorCode, details string) *Error {
	return &Error{
		Type:    typ,
		Code:    code,
		Details: details,
	}
}

func (e *Error) Error() string {
	return e.Details
}

// Verbose returns the error with its type and code.
func (e *Error) Verbose() string {
	return fmt.Sprintf("type: %s, code: %d, details: %s", e.Type, e.Code, e.Details)
}

// IsErrorType checks if the error is of the given type.
func IsErrorType(err error, typ ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == typ
	}

	return false
}

// IsErrorCode checks if the error is of the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}

	return false
}
