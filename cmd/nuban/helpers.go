package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/config"
	"github.com/Veraticus/nuban/internal/directory"
	"github.com/Veraticus/nuban/internal/registry"
	"github.com/Veraticus/nuban/internal/service"
	"github.com/Veraticus/nuban/internal/storage"
)

// initStorage opens the bank cache and runs migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.Open(ctx, config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open bank cache: %w", err)
	}
	return store, nil
}

// bankEnv holds whatever a command needs to resolve a bank source.
type bankEnv struct {
	service *service.BankService
	store   *storage.SQLiteStorage
}

func (e *bankEnv) Close() {
	if e.store == nil {
		return
	}
	if err := e.store.Close(); err != nil {
		slog.Warn("Failed to close bank cache", "error", err)
	}
}

// newBankEnv builds the bank service for src, opening only the backends
// that source uses.
func newBankEnv(ctx context.Context, src service.Source) (*bankEnv, error) {
	env := &bankEnv{}
	if src == service.SourceBuiltin {
		env.service = service.NewBankService(nil, nil)
		return env, nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}
	env.store = store

	var dir directory.Directory
	if src == service.SourceOnline {
		client, err := newDirectoryClient()
		if err != nil {
			env.Close()
			return nil, err
		}
		dir = client
	}

	env.service = service.NewBankService(store, dir)
	return env, nil
}

func newDirectoryClient() (*directory.Client, error) {
	cfg, err := config.LoadDirectoryConfig()
	if err != nil {
		if errors.Is(err, common.ErrMissingConfig) {
			return nil, common.NewUserError("set directory.token or PAYSTACK_SECRET_KEY to use the online bank directory", err)
		}
		return nil, err
	}
	return directory.NewClient(*cfg)
}

// addSourceFlag registers the shared --source flag.
func addSourceFlag(cmd *cobra.Command) {
	cmd.Flags().String("source", string(service.SourceBuiltin), "bank list source (builtin, cache, online)")
}

// loadRegistry resolves the --source flag of cmd to a registry.
func loadRegistry(cmd *cobra.Command) (registry.Registry, error) {
	raw, _ := cmd.Flags().GetString("source")
	src, err := service.ParseSource(raw)
	if err != nil {
		return registry.Registry{}, err
	}

	env, err := newBankEnv(cmd.Context(), src)
	if err != nil {
		return registry.Registry{}, err
	}
	defer env.Close()

	return env.service.Registry(cmd.Context(), src)
}
