// Package directory fetches bank lists from an online bank directory.
package directory

import (
	"context"

	"github.com/Veraticus/nuban/internal/model"
)

// Directory defines the contract for fetching the current bank list.
// Results use the same shape as the built-in registry so either can be
// fed to the predictor.
type Directory interface {
	ListBanks(ctx context.Context) ([]model.Bank, error)
}
