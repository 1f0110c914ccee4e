package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/store"
	"github.com/hance08/kas/internal/validation"
)

type CategoryService struct {
	repo   store.Repository
	config *config.Config
}

func NewCategoryService(repo store.Repository, cfg *config.Config) *CategoryService {
	return &CategoryService{repo: repo, config: cfg}
}

// ListCategories returns every category, creating the default set first
// when the ledger has none.
func (cs *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := cs.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	err = cs.repo.ExecTx(ctx, func(r store.Repository) error {
		now := time.Now().UTC()
		for _, d := range constants.DefaultCategories {
			c := model.Category{ID: uuid.New(), UserID: cs.config.UserID(), Name: d.Name, Kind: d.Kind, CreatedAt: now}
			if err := r.CreateCategory(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create default categories: %w", err)
	}
	return cs.repo.ListCategories(ctx)
}

// ByKind filters ListCategories.
func (cs *CategoryService) ByKind(ctx context.Context, kind model.Kind) ([]model.Category, error) {
	all, err := cs.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Category
	for _, c := range all {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (cs *CategoryService) CreateCategory(ctx context.Context, name string, kind model.Kind) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if err := validation.NameValidator("category name")(name); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("category kind must be income or expense")
	}

	if _, err := cs.repo.GetCategoryByName(ctx, name); err == nil {
		return nil, fmt.Errorf("category '%s': %w", name, ErrCategoryExists)
	} else if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	c := model.Category{ID: uuid.New(), UserID: cs.config.UserID(), Name: name, Kind: kind, CreatedAt: time.Now().UTC()}
	if err := cs.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Resolve finds a category by name, making sure the defaults exist first.
func (cs *CategoryService) Resolve(ctx context.Context, name string) (*model.Category, error) {
	if _, err := cs.ListCategories(ctx); err != nil {
		return nil, err
	}
	return cs.repo.GetCategoryByName(ctx, strings.TrimSpace(name))
}
