// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"

	"github.com/Veraticus/nuban/internal/nuban"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound      = errors.New("not found")
	ErrEmptyBankList = errors.New("empty bank list")
	ErrUnknownSource = errors.New("unknown bank source")

	// Bank directory errors.
	ErrDirectoryConnection   = errors.New("bank directory request failed")
	ErrDirectoryUnauthorized = errors.New("bank directory rejected credentials")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// InputErrorKind names the NUBAN error kind wrapped by err, or "" when err
// is not an input error.
func InputErrorKind(err error) string {
	switch {
	case errors.Is(err, nuban.ErrInvalidAccountNumber):
		return "invalid_account_number"
	case errors.Is(err, nuban.ErrInvalidBankCode):
		return "invalid_bank_code"
	case errors.Is(err, nuban.ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, nuban.ErrInvalidInputLength):
		return "invalid_input_length"
	default:
		return ""
	}
}
