package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
)

const categoryColumns = `id, user_id, name, kind, created_at`

func (s *Store) CreateCategory(ctx context.Context, c model.Category) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO categories (id, user_id, name, kind, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, c.ID.String(), c.UserID.String(), c.Name, c.Kind.Token(), toUnix(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create category '%s': %w", c.Name, mapError(err))
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id.String())

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query category %s: %w", id, err)
	}
	return c, nil
}

// GetCategoryByName matches names case-insensitively.
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+categoryColumns+`
        FROM categories
        WHERE name = ? COLLATE NOCASE
        ORDER BY created_at
        LIMIT 1
    `, name)

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category '%s': %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query category '%s': %w", name, err)
	}
	return c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+categoryColumns+`
        FROM categories
        ORDER BY kind, name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func scanCategory(row scanner) (*model.Category, error) {
	var (
		c                model.Category
		id, userID, kind string
		createdAt        int64
	)
	if err := row.Scan(&id, &userID, &c.Name, &kind, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("category id %q: %w", id, err)
	}
	if c.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("category user id %q: %w", userID, err)
	}
	c.Kind = model.KindFromToken(kind)
	c.CreatedAt = fromUnix(createdAt)
	return &c, nil
}
