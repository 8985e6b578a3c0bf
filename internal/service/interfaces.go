// Package service selects and maintains the bank lists used for lookups
// and prediction.
package service

import (
	"context"

	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/storage"
)

// BankStore defines the contract for the bank list cache.
type BankStore interface {
	ReplaceBanks(ctx context.Context, source string, banks []model.Bank) error
	GetBanks(ctx context.Context, source string) ([]model.Bank, error)
	LastSync(ctx context.Context, source string) (*storage.SyncInfo, error)
	ListSyncs(ctx context.Context) ([]storage.SyncInfo, error)
}

// Ensure SQLiteStorage implements BankStore interface.
var _ BankStore = (*storage.SQLiteStorage)(nil)
