package service

import (
	"context"

	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/log"
	"github.com/hance08/kas/internal/remote"
	"github.com/hance08/kas/internal/snapshot"
	"github.com/hance08/kas/internal/store"
	"github.com/hance08/kas/internal/utils"
)

// Fetcher is the part of the remote client used by sync.
type Fetcher interface {
	Fetch(ctx context.Context, s remote.Session, limit int) (snapshot.Document, error)
	Analytics(ctx context.Context, s remote.Session) (snapshot.AnalyticsRecord, error)
}

type Deps struct {
	Repo    store.Repository
	Config  *config.Config
	Logger  *log.Logger
	Fetcher Fetcher
	Kinds   *snapshot.KindTable
}

type Service struct {
	Config *config.Config

	Wallet      *WalletService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Analytics   *AnalyticsService
	Sync        *SyncService
}

func NewService(d Deps) *Service {
	if d.Logger == nil {
		d.Logger = log.Nop()
	}
	if d.Kinds == nil {
		d.Kinds = snapshot.DefaultKindTable()
	}
	wallet := NewWalletService(d.Repo, d.Config)
	category := NewCategoryService(d.Repo, d.Config)
	txn := NewTransactionService(d.Repo, d.Config, category)
	budget := NewBudgetService(d.Repo, d.Config, category)

	return &Service{
		Config:      d.Config,
		Wallet:      wallet,
		Category:    category,
		Transaction: txn,
		Budget:      budget,
		Analytics:   NewAnalyticsService(d.Repo, d.Config, budget, txn),
		Sync:        NewSyncService(d.Repo, d.Config, d.Fetcher, d.Kinds, d.Logger),
	}
}

// Formatter renders amounts in the configured currency and number style.
func (s *Service) Formatter() utils.Formatter {
	return utils.NewFormatter(s.Config.Defaults.Currency, s.Config.Defaults.NumberStyle)
}
