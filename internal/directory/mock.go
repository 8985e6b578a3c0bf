package directory

import (
	"context"

	"github.com/Veraticus/nuban/internal/model"
)

// MockDirectory is a mock implementation of Directory for testing.
type MockDirectory struct {
	// ListBanksFn can be set by tests to control behavior.
	ListBanksFn func(ctx context.Context) ([]model.Bank, error)

	// Call tracking
	ListBanksCalls int
}

// NewMockDirectory creates a new mock directory.
func NewMockDirectory() *MockDirectory {
	return &MockDirectory{}
}

// ListBanks implements Directory.ListBanks.
func (m *MockDirectory) ListBanks(ctx context.Context) ([]model.Bank, error) {
	m.ListBanksCalls++

	if m.ListBanksFn != nil {
		return m.ListBanksFn(ctx)
	}

	// Default behavior: return empty slice
	return []model.Bank{}, nil
}

// Reset clears all call tracking.
func (m *MockDirectory) Reset() {
	m.ListBanksCalls = 0
}

// Ensure MockDirectory implements Directory interface.
var _ Directory = (*MockDirectory)(nil)
