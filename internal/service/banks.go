package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/directory"
	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/registry"
	"github.com/Veraticus/nuban/internal/storage"
)

// Source names where a bank list comes from.
type Source string

const (
	// SourceBuiltin is the registry compiled into the binary.
	SourceBuiltin Source = "builtin"
	// SourceCache is the last list synced from the directory.
	SourceCache Source = "cache"
	// SourceOnline fetches the list from the directory on every call.
	SourceOnline Source = "online"
)

// CacheKey is the storage source name used for directory lists.
const CacheKey = "directory"

// ParseSource converts a flag value to a Source.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceBuiltin, "":
		return SourceBuiltin, nil
	case SourceCache:
		return SourceCache, nil
	case SourceOnline:
		return SourceOnline, nil
	default:
		return "", fmt.Errorf("%w: %q (want builtin, cache or online)", common.ErrUnknownSource, s)
	}
}

// BankService resolves a Source to a registry. The store and directory are
// optional; sources that need a missing one fail with ErrMissingConfig.
type BankService struct {
	store     BankStore
	directory directory.Directory
	logger    *slog.Logger
}

// NewBankService creates a bank service.
func NewBankService(store BankStore, dir directory.Directory) *BankService {
	return &BankService{
		store:     store,
		directory: dir,
		logger:    slog.Default().With("component", "banks"),
	}
}

// Registry returns the bank list for src.
func (s *BankService) Registry(ctx context.Context, src Source) (registry.Registry, error) {
	switch src {
	case SourceBuiltin, "":
		return registry.Default(), nil

	case SourceCache:
		if s.store == nil {
			return registry.Registry{}, fmt.Errorf("%w: cache source needs a database", common.ErrMissingConfig)
		}
		banks, err := s.store.GetBanks(ctx, CacheKey)
		if err != nil {
			return registry.Registry{}, common.NewUserError("no cached bank list, run `nuban banks sync` first", err)
		}
		s.reportCacheAge(ctx)
		return registry.New(banks), nil

	case SourceOnline:
		if s.directory == nil {
			return registry.Registry{}, fmt.Errorf("%w: online source needs directory.token", common.ErrMissingConfig)
		}
		banks, err := s.directory.ListBanks(ctx)
		if err != nil {
			return registry.Registry{}, fmt.Errorf("failed to fetch bank list: %w", err)
		}
		s.cache(ctx, banks)
		return registry.New(banks), nil

	default:
		return registry.Registry{}, fmt.Errorf("%w: %q", common.ErrUnknownSource, src)
	}
}

// Sync fetches the directory list and stores it as the cached list.
// It returns the number of banks stored.
func (s *BankService) Sync(ctx context.Context) (int, error) {
	if s.directory == nil {
		return 0, fmt.Errorf("%w: sync needs directory.token", common.ErrMissingConfig)
	}
	if s.store == nil {
		return 0, fmt.Errorf("%w: sync needs a database", common.ErrMissingConfig)
	}

	banks, err := s.directory.ListBanks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch bank list: %w", err)
	}

	if err := s.store.ReplaceBanks(ctx, CacheKey, banks); err != nil {
		return 0, fmt.Errorf("failed to store bank list: %w", err)
	}

	s.logger.Info("Synced bank list", "count", len(banks))
	return len(banks), nil
}

// Syncs returns the sync record of every cached source, newest first.
func (s *BankService) Syncs(ctx context.Context) ([]storage.SyncInfo, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: sync status needs a database", common.ErrMissingConfig)
	}
	syncs, err := s.store.ListSyncs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list syncs: %w", err)
	}
	return syncs, nil
}

// reportCacheAge logs how old the cached directory list is.
func (s *BankService) reportCacheAge(ctx context.Context) {
	info, err := s.store.LastSync(ctx, CacheKey)
	if err != nil {
		s.logger.Debug("No sync record for cached bank list", "error", err)
		return
	}
	common.LogInfo("Using cached bank list", common.Fields{
		"banks":     info.BankCount,
		"synced_at": info.SyncedAt.Format(time.RFC3339),
		"age":       time.Since(info.SyncedAt).Round(time.Second).String(),
	})
}

// cache writes an online list through to the store when one is configured.
func (s *BankService) cache(ctx context.Context, banks []model.Bank) {
	if s.store == nil {
		return
	}
	if err := s.store.ReplaceBanks(ctx, CacheKey, banks); err != nil {
		s.logger.Warn("Failed to cache bank list", "error", err)
	}
}
