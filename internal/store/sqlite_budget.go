package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
)

// UpsertBudget stores b, replacing the amount of an existing budget for the
// same category. The original id and creation time are kept on update.
func (s *Store) UpsertBudget(ctx context.Context, b model.Budget) error {
	spent := b.Spent
	if spent == "" {
		spent = "0"
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO budgets (id, user_id, category_id, category_name, amount, spent, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(category_id) DO UPDATE SET
            amount = excluded.amount,
            category_name = excluded.category_name
    `, b.ID.String(), b.UserID.String(), b.CategoryID.String(), b.CategoryName, b.Amount, spent, toUnix(b.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save budget for '%s': %w", b.CategoryName, mapError(err))
	}
	return nil
}

// ListBudgets prefers the current category name over the one stored with
// the budget. Spent is whatever was last stored; callers that need the
// live figure recompute it.
func (s *Store) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT b.id, b.user_id, b.category_id, COALESCE(c.name, b.category_name),
               b.amount, b.spent, b.created_at
        FROM budgets b
        LEFT JOIN categories c ON c.id = b.category_id
        ORDER BY b.created_at DESC, b.id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	budgets := []model.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func scanBudget(row scanner) (*model.Budget, error) {
	var (
		b                      model.Budget
		id, userID, categoryID string
		createdAt              int64
	)
	err := row.Scan(&id, &userID, &categoryID, &b.CategoryName, &b.Amount, &b.Spent, &createdAt)
	if err != nil {
		return nil, err
	}

	if b.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("budget id %q: %w", id, err)
	}
	if b.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("budget user id %q: %w", userID, err)
	}
	if b.CategoryID, err = uuid.Parse(categoryID); err != nil {
		return nil, fmt.Errorf("budget category id %q: %w", categoryID, err)
	}
	b.CreatedAt = fromUnix(createdAt)
	return &b, nil
}
