package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/model"
)

// SyncInfo describes the last time a bank list was stored.
type SyncInfo struct {
	SyncedAt  time.Time
	Source    string
	BankCount int
}

// ReplaceBanks stores banks as the complete list for source, replacing any
// previous list. Order is preserved.
func (s *SQLiteStorage) ReplaceBanks(ctx context.Context, source string, banks []model.Bank) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(source, "source"); err != nil {
		return err
	}
	if err := validateBanks(banks); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM banks WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to clear banks for %s: %w", source, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO banks (source, position, name, code) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, bank := range banks {
		if _, err := stmt.ExecContext(ctx, source, i, bank.Name, bank.Code); err != nil {
			return fmt.Errorf("failed to insert bank %q: %w", bank.Name, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bank_syncs (source, bank_count, synced_at) VALUES (?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET bank_count = excluded.bank_count, synced_at = excluded.synced_at
	`, source, len(banks), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record sync: %w", err)
	}

	return tx.Commit()
}

// GetBanks returns the stored list for source in its original order.
// It returns common.ErrNotFound when nothing is stored for source.
func (s *SQLiteStorage) GetBanks(ctx context.Context, source string) ([]model.Bank, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(source, "source"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, code
		FROM banks
		WHERE source = ?
		ORDER BY position
	`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var banks []model.Bank
	for rows.Next() {
		var bank model.Bank
		if err := rows.Scan(&bank.Name, &bank.Code); err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate banks: %w", err)
	}

	if len(banks) == 0 {
		return nil, fmt.Errorf("banks for source %q: %w", source, common.ErrNotFound)
	}
	return banks, nil
}

// LastSync returns when source was last stored.
func (s *SQLiteStorage) LastSync(ctx context.Context, source string) (*SyncInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	info := SyncInfo{Source: source}
	err := s.db.QueryRowContext(ctx, `
		SELECT bank_count, synced_at FROM bank_syncs WHERE source = ?
	`, source).Scan(&info.BankCount, &info.SyncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sync for source %q: %w", source, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sync info: %w", err)
	}
	return &info, nil
}

// ListSyncs returns the sync record of every stored source, newest first.
func (s *SQLiteStorage) ListSyncs(ctx context.Context) ([]SyncInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source, bank_count, synced_at FROM bank_syncs ORDER BY synced_at DESC, source
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query syncs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var syncs []SyncInfo
	for rows.Next() {
		var info SyncInfo
		if err := rows.Scan(&info.Source, &info.BankCount, &info.SyncedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sync: %w", err)
		}
		syncs = append(syncs, info)
	}
	return syncs, rows.Err()
}
