package store

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/snapshot"
)

// ReplaceAll swaps the whole ledger for s in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, snap snapshot.Snapshot) error {
	return s.inTx(ctx, func(r Repository) error {
		tx := r.(*Store)

		for _, table := range []string{"transactions", "budgets", "categories", "wallets"} {
			if _, err := tx.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		for _, w := range snap.Wallets {
			if err := tx.CreateWallet(ctx, w); err != nil {
				return err
			}
		}
		for _, c := range snap.Categories {
			if err := tx.CreateCategory(ctx, c); err != nil {
				return err
			}
		}
		for _, t := range snap.Transactions {
			if err := tx.CreateTransaction(ctx, t); err != nil {
				return fmt.Errorf("transaction %s: %w", t.ID, err)
			}
		}
		for _, b := range snap.Budgets {
			if err := tx.UpsertBudget(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadSnapshot reads the whole ledger.
func (s *Store) LoadSnapshot(ctx context.Context) (snapshot.Snapshot, error) {
	var (
		snap snapshot.Snapshot
		err  error
	)
	if snap.Wallets, err = s.ListWallets(ctx); err != nil {
		return snapshot.Snapshot{}, err
	}
	if snap.Categories, err = s.ListCategories(ctx); err != nil {
		return snapshot.Snapshot{}, err
	}
	if snap.Transactions, err = s.ListTransactions(ctx, 0); err != nil {
		return snapshot.Snapshot{}, err
	}
	if snap.Budgets, err = s.ListBudgets(ctx); err != nil {
		return snapshot.Snapshot{}, err
	}
	return snap, nil
}
