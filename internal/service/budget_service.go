package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/store"
	"github.com/hance08/kas/internal/validation"
)

// BudgetService owns the budget period. A budget's spent figure is the sum
// of expense transactions in its category during the current calendar
// month, in the configured timezone.
type BudgetService struct {
	repo       store.Repository
	config     *config.Config
	categories *CategoryService
	now        func() time.Time
}

func NewBudgetService(repo store.Repository, cfg *config.Config, categories *CategoryService) *BudgetService {
	return &BudgetService{repo: repo, config: cfg, categories: categories, now: time.Now}
}

// CurrentPeriod returns [start, end) of the calendar month containing now.
func (bs *BudgetService) CurrentPeriod() (time.Time, time.Time) {
	return monthBounds(bs.now(), bs.config.Location())
}

func monthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	now = now.In(loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// SetBudget creates or replaces the limit for an expense category.
func (bs *BudgetService) SetBudget(ctx context.Context, categoryName, amount string) (*model.Budget, error) {
	limit, err := validation.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	category, err := bs.categories.Resolve(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if category.Kind != model.KindExpense {
		return nil, fmt.Errorf("'%s': %w", category.Name, ErrNotExpenseCategory)
	}

	b := model.Budget{
		ID:           uuid.New(),
		UserID:       bs.config.UserID(),
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Amount:       limit.String(),
		CreatedAt:    bs.now().UTC(),
	}
	if err := bs.repo.UpsertBudget(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBudgets returns every budget with Spent computed for the current
// period.
func (bs *BudgetService) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	budgets, err := bs.repo.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return budgets, nil
	}

	from, to := bs.CurrentPeriod()
	txns, err := bs.repo.ListTransactionsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return withSpent(budgets, txns), nil
}

func withSpent(budgets []model.Budget, txns []model.Transaction) []model.Budget {
	byCategory := make(map[uuid.UUID][]model.Transaction)
	for _, t := range txns {
		if t.CategoryID != nil {
			byCategory[*t.CategoryID] = append(byCategory[*t.CategoryID], t)
		}
	}

	out := make([]model.Budget, len(budgets))
	for i, b := range budgets {
		b.Spent = aggregator.TotalByKind(byCategory[b.CategoryID], model.KindExpense).String()
		out[i] = b
	}
	return out
}

func (bs *BudgetService) Overview(ctx context.Context) (aggregator.Overview, error) {
	budgets, err := bs.ListBudgets(ctx)
	if err != nil {
		return aggregator.Overview{}, err
	}
	return aggregator.BudgetOverview(budgets), nil
}
