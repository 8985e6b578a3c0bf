package nuban

import (
	"errors"
	"fmt"
)

// Input validation errors. Every error returned by this package wraps one
// of these and can be matched with errors.Is.
var (
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidBankCode      = errors.New("invalid bank code")
	ErrInvalidDigit         = errors.New("invalid digit")
	// ErrInvalidInputLength signals a digit string and weight vector of
	// different lengths. Callers control both, so this is a usage error.
	ErrInvalidInputLength = errors.New("digit string and weights differ in length")
)

// InputError carries the offending value of a failed validation.
type InputError struct {
	Err    error
	Value  string
	Length int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q (length %d)", e.Err, e.Value, e.Length)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func newInputError(kind error, value string) error {
	return &InputError{Err: kind, Value: value, Length: len(value)}
}
