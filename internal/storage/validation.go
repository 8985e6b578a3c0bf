package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/nuban/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrEmptySlice  = errors.New("slice cannot be empty")
	ErrInvalidBank = errors.New("invalid bank")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateBanks checks every entry has a name and a code. Codes are not
// normalized here: malformed codes are kept and skipped at prediction time.
func validateBanks(banks []model.Bank) error {
	if len(banks) == 0 {
		return fmt.Errorf("%w: banks", ErrEmptySlice)
	}

	for i, bank := range banks {
		if strings.TrimSpace(bank.Name) == "" {
			return fmt.Errorf("bank at index %d: %w: name is empty", i, ErrInvalidBank)
		}
		if strings.TrimSpace(bank.Code) == "" {
			return fmt.Errorf("bank at index %d: %w: code is empty", i, ErrInvalidBank)
		}
	}
	return nil
}
