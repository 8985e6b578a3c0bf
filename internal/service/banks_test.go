package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/directory"
	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/registry"
	"github.com/Veraticus/nuban/internal/storage"
)

func newStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "nuban.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func onlineBanks() []model.Bank {
	return []model.Bank{
		{Name: "Zenith Bank", Code: "057"},
		{Name: "Moniepoint MFB", Code: "50515"},
	}
}

func TestParseSource(t *testing.T) {
	for input, want := range map[string]Source{
		"":         SourceBuiltin,
		"builtin":  SourceBuiltin,
		"CACHE":    SourceCache,
		" online ": SourceOnline,
	} {
		got, err := ParseSource(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseSource("ftp")
	assert.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestBankService_Builtin(t *testing.T) {
	svc := NewBankService(nil, nil)

	reg, err := svc.Registry(context.Background(), SourceBuiltin)
	require.NoError(t, err)
	assert.Equal(t, registry.Banks(), reg.Banks())
}

func TestBankService_MissingDependencies(t *testing.T) {
	svc := NewBankService(nil, nil)
	ctx := context.Background()

	_, err := svc.Registry(ctx, SourceCache)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = svc.Registry(ctx, SourceOnline)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = svc.Sync(ctx)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = svc.Registry(ctx, Source("other"))
	assert.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestBankService_SyncThenCache(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMockDirectory()
	dir.ListBanksFn = func(context.Context) ([]model.Bank, error) { return onlineBanks(), nil }
	svc := NewBankService(newStore(t), dir)

	_, err := svc.Registry(ctx, SourceCache)
	var userErr *common.UserError
	require.True(t, errors.As(err, &userErr))
	assert.ErrorIs(t, err, common.ErrNotFound)

	count, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	reg, err := svc.Registry(ctx, SourceCache)
	require.NoError(t, err)
	assert.Equal(t, onlineBanks(), reg.Banks())
	assert.Equal(t, 1, dir.ListBanksCalls)
}

func TestBankService_OnlineWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	dir := directory.NewMockDirectory()
	dir.ListBanksFn = func(context.Context) ([]model.Bank, error) { return onlineBanks(), nil }
	svc := NewBankService(store, dir)

	reg, err := svc.Registry(ctx, SourceOnline)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	cached, err := store.GetBanks(ctx, CacheKey)
	require.NoError(t, err)
	assert.Equal(t, onlineBanks(), cached)
}

func TestBankService_SyncDirectoryFailure(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMockDirectory()
	dir.ListBanksFn = func(context.Context) ([]model.Bank, error) {
		return nil, common.ErrDirectoryUnauthorized
	}
	svc := NewBankService(newStore(t), dir)

	_, err := svc.Sync(ctx)
	assert.ErrorIs(t, err, common.ErrDirectoryUnauthorized)

	_, err = svc.Registry(ctx, SourceOnline)
	assert.ErrorIs(t, err, common.ErrDirectoryUnauthorized)
}

func TestBankService_Syncs(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMockDirectory()
	dir.ListBanksFn = func(context.Context) ([]model.Bank, error) { return onlineBanks(), nil }
	svc := NewBankService(newStore(t), dir)

	syncs, err := svc.Syncs(ctx)
	require.NoError(t, err)
	assert.Empty(t, syncs)

	_, err = svc.Sync(ctx)
	require.NoError(t, err)

	syncs, err = svc.Syncs(ctx)
	require.NoError(t, err)
	require.Len(t, syncs, 1)
	assert.Equal(t, CacheKey, syncs[0].Source)
	assert.Equal(t, 2, syncs[0].BankCount)
	assert.False(t, syncs[0].SyncedAt.IsZero())

	_, err = NewBankService(nil, nil).Syncs(ctx)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestBankService_CacheLogsAge(t *testing.T) {
	var buf bytes.Buffer
	logger, err := common.NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	prev := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()
	dir := directory.NewMockDirectory()
	dir.ListBanksFn = func(context.Context) ([]model.Bank, error) { return onlineBanks(), nil }
	svc := NewBankService(newStore(t), dir)
	_, err = svc.Sync(ctx)
	require.NoError(t, err)

	buf.Reset()
	_, err = svc.Registry(ctx, SourceCache)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"Using cached bank list"`)
	assert.Contains(t, buf.String(), `"banks":2`)
	assert.Contains(t, buf.String(), `"age":`)
}
