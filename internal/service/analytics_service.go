package service

import (
	"context"

	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/store"
)

type AnalyticsService struct {
	repo         store.Repository
	config       *config.Config
	budgets      *BudgetService
	transactions *TransactionService
}

func NewAnalyticsService(repo store.Repository, cfg *config.Config, budgets *BudgetService, txns *TransactionService) *AnalyticsService {
	return &AnalyticsService{repo: repo, config: cfg, budgets: budgets, transactions: txns}
}

type Dashboard struct {
	aggregator.Summary
	WalletCount int
	Recent      []TransactionDetail
}

// Dashboard computes the summary cards over the whole ledger and attaches
// the most recent transactions.
func (as *AnalyticsService) Dashboard(ctx context.Context, recent int) (*Dashboard, error) {
	snap, err := as.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := as.transactions.ListTransactions(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Summary:     aggregator.Summarize(snap.Wallets, snap.Transactions),
		WalletCount: len(snap.Wallets),
		Recent:      latest,
	}, nil
}

// Analytics builds the analytics page. months <= 0 uses the configured
// default.
func (as *AnalyticsService) Analytics(ctx context.Context, months int) (aggregator.Analytics, error) {
	if months <= 0 {
		months = as.config.Analytics.Months
	}

	snap, err := as.repo.LoadSnapshot(ctx)
	if err != nil {
		return aggregator.Analytics{}, err
	}
	budgets, err := as.budgets.ListBudgets(ctx)
	if err != nil {
		return aggregator.Analytics{}, err
	}

	return aggregator.Analyze(snap.Transactions, snap.Categories, budgets, aggregator.Options{
		Months:   months,
		Location: as.config.Location(),
	}), nil
}
