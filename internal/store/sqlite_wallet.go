package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
)

const walletColumns = `id, user_id, type, name, balance, created_at`

func (s *Store) CreateWallet(ctx context.Context, w model.Wallet) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO wallets (id, user_id, type, name, balance, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, w.ID.String(), w.UserID.String(), w.Type, w.Name, w.Balance, toUnix(w.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create wallet '%s': %w", w.Name, mapError(err))
	}
	return nil
}

func (s *Store) GetWallet(ctx context.Context, id uuid.UUID) (*model.Wallet, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+walletColumns+" FROM wallets WHERE id = ?", id.String())

	w, err := scanWallet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wallet %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query wallet %s: %w", id, err)
	}
	return w, nil
}

// GetWalletByName matches names case-insensitively.
func (s *Store) GetWalletByName(ctx context.Context, name string) (*model.Wallet, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+walletColumns+`
        FROM wallets
        WHERE name = ? COLLATE NOCASE
        ORDER BY created_at
        LIMIT 1
    `, name)

	w, err := scanWallet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wallet '%s': %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query wallet '%s': %w", name, err)
	}
	return w, nil
}

func (s *Store) ListWallets(ctx context.Context) ([]model.Wallet, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+walletColumns+`
        FROM wallets
        ORDER BY created_at DESC, name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	wallets := []model.Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, *w)
	}
	return wallets, rows.Err()
}

func (s *Store) UpdateWalletBalance(ctx context.Context, id uuid.UUID, balance string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE wallets SET balance = ? WHERE id = ?`, balance, id.String())
	if err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("wallet %s: %w", id, ErrRecordNotFound)
	}
	return nil
}

func scanWallet(row scanner) (*model.Wallet, error) {
	var (
		w          model.Wallet
		id, userID string
		createdAt  int64
	)
	if err := row.Scan(&id, &userID, &w.Type, &w.Name, &w.Balance, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if w.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("wallet id %q: %w", id, err)
	}
	if w.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("wallet user id %q: %w", userID, err)
	}
	w.CreatedAt = fromUnix(createdAt)
	return &w, nil
}
