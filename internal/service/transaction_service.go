package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/store"
)

type TransactionService struct {
	repo       store.Repository
	config     *config.Config
	categories *CategoryService
}

func NewTransactionService(repo store.Repository, cfg *config.Config, categories *CategoryService) *TransactionService {
	return &TransactionService{repo: repo, config: cfg, categories: categories}
}

// CreateTransaction records in and moves the wallet balance by the amount,
// up for income and down for expense, in one database transaction.
func (ts *TransactionService) CreateTransaction(ctx context.Context, in TransactionInput) (*model.Transaction, error) {
	amount, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	var category *model.Category
	if strings.TrimSpace(in.CategoryName) != "" {
		category, err = ts.categories.Resolve(ctx, in.CategoryName)
		if err != nil {
			return nil, err
		}
		if err := checkCategoryKind(category, in.Kind); err != nil {
			return nil, err
		}
	}

	t := model.Transaction{
		ID:         uuid.New(),
		UserID:     ts.config.UserID(),
		Amount:     amount.String(),
		Kind:       in.Kind,
		OccurredAt: in.OccurredAt,
		CreatedAt:  time.Now().UTC(),
	}
	if category != nil {
		t.CategoryID = &category.ID
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		t.Note = &note
	}

	err = ts.repo.ExecTx(ctx, func(r store.Repository) error {
		wallet, err := r.GetWalletByName(ctx, strings.TrimSpace(in.WalletName))
		if err != nil {
			return err
		}
		t.WalletID = wallet.ID

		if err := r.CreateTransaction(ctx, t); err != nil {
			return err
		}

		balance := aggregator.ParseAmount(wallet.Balance).Add(balanceDelta(t.Kind, amount))
		return r.UpdateWalletBalance(ctx, wallet.ID, balance.String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return &t, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (ts *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return ts.repo.ExecTx(ctx, func(r store.Repository) error {
		t, err := r.GetTransaction(ctx, id)
		if err != nil {
			return err
		}
		wallet, err := r.GetWallet(ctx, t.WalletID)
		if err != nil {
			return err
		}

		if err := r.DeleteTransaction(ctx, id); err != nil {
			return err
		}

		delta := balanceDelta(t.Kind, aggregator.ParseAmount(t.Amount))
		balance := aggregator.ParseAmount(wallet.Balance).Sub(delta)
		return r.UpdateWalletBalance(ctx, wallet.ID, balance.String())
	})
}

// ListTransactions returns the most recent transactions with names
// resolved. limit <= 0 lists everything.
func (ts *TransactionService) ListTransactions(ctx context.Context, limit int) ([]TransactionDetail, error) {
	txns, err := ts.repo.ListTransactions(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ts.describe(ctx, txns)
}

func (ts *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionDetail, error) {
	t, err := ts.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := ts.describe(ctx, []model.Transaction{*t})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// FindTransaction accepts a full id or a unique prefix of one, as shown in
// transaction lists.
func (ts *TransactionService) FindTransaction(ctx context.Context, ref string) (*TransactionDetail, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		return ts.GetTransaction(ctx, id)
	}
	if ref == "" {
		return nil, fmt.Errorf("transaction id is required")
	}

	all, err := ts.repo.ListTransactions(ctx, 0)
	if err != nil {
		return nil, err
	}
	var match *model.Transaction
	for i := range all {
		if strings.HasPrefix(all[i].ID.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("'%s': %w", ref, ErrAmbiguousTransaction)
			}
			match = &all[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("transaction '%s': %w", ref, store.ErrRecordNotFound)
	}
	return ts.GetTransaction(ctx, match.ID)
}

func (ts *TransactionService) describe(ctx context.Context, txns []model.Transaction) ([]TransactionDetail, error) {
	wallets, err := ts.repo.ListWallets(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := ts.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	walletNames := make(map[uuid.UUID]string, len(wallets))
	for _, w := range wallets {
		walletNames[w.ID] = w.Name
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	details := make([]TransactionDetail, 0, len(txns))
	for _, t := range txns {
		d := TransactionDetail{Transaction: t, WalletName: walletNames[t.WalletID]}
		if t.CategoryID != nil {
			d.CategoryName = categoryNames[*t.CategoryID]
		}
		details = append(details, d)
	}
	return details, nil
}
