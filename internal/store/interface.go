package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/snapshot"
)

type Repository interface {
	// Wallet Operations
	CreateWallet(ctx context.Context, w model.Wallet) error
	GetWallet(ctx context.Context, id uuid.UUID) (*model.Wallet, error)
	GetWalletByName(ctx context.Context, name string) (*model.Wallet, error)
	ListWallets(ctx context.Context) ([]model.Wallet, error)
	UpdateWalletBalance(ctx context.Context, id uuid.UUID, balance string) error

	// Category Operations
	CreateCategory(ctx context.Context, c model.Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	// Transaction Operations
	CreateTransaction(ctx context.Context, t model.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	// Budget Operations
	UpsertBudget(ctx context.Context, b model.Budget) error
	ListBudgets(ctx context.Context) ([]model.Budget, error)

	// Snapshot Operations
	ReplaceAll(ctx context.Context, s snapshot.Snapshot) error
	LoadSnapshot(ctx context.Context) (snapshot.Snapshot, error)

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
