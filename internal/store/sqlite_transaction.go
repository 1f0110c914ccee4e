package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
)

const transactionColumns = `id, user_id, wallet_id, category_id, amount, kind, note, occurred_at, created_at`

// CreateTransaction inserts the row only. Moving the wallet balance is the
// caller's job, inside the same ExecTx.
func (s *Store) CreateTransaction(ctx context.Context, t model.Transaction) error {
	if !t.Kind.Valid() {
		return fmt.Errorf("failed to insert transaction: %w: kind %s", ErrConstraintViolation, t.Kind)
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transactions (`+transactionColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		t.ID.String(), t.UserID.String(), t.WalletID.String(), nullableID(t.CategoryID),
		t.Amount, t.Kind.Token(), nullableText(t.Note),
		toUnix(t.OccurredAt), toUnix(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id.String())

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return t, nil
}

// ListTransactions returns the most recent transactions, newest first.
// limit <= 0 returns all of them.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        ORDER BY occurred_at DESC, created_at DESC, id
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

// ListTransactionsBetween returns transactions with from <= occurred_at < to,
// oldest first.
func (s *Store) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE occurred_at >= ? AND occurred_at < ?
        ORDER BY occurred_at, created_at, id
    `, from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrRecordNotFound)
	}
	return nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	txns := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	var (
		t                          model.Transaction
		id, userID, walletID, kind string
		categoryID, note           sql.NullString
		occurredAt, createdAt      int64
	)
	err := row.Scan(
		&id, &userID, &walletID, &categoryID,
		&t.Amount, &kind, &note,
		&occurredAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("transaction id %q: %w", id, err)
	}
	if t.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("transaction user id %q: %w", userID, err)
	}
	if t.WalletID, err = uuid.Parse(walletID); err != nil {
		return nil, fmt.Errorf("transaction wallet id %q: %w", walletID, err)
	}
	if t.CategoryID, err = parseNullableID(categoryID); err != nil {
		return nil, fmt.Errorf("transaction category id %q: %w", categoryID.String, err)
	}
	t.Kind = model.KindFromToken(kind)
	t.Note = parseNullableText(note)
	t.OccurredAt = fromUnix(occurredAt)
	t.CreatedAt = fromUnix(createdAt)
	return &t, nil
}
