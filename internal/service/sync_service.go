package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/log"
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/remote"
	"github.com/hance08/kas/internal/snapshot"
	"github.com/hance08/kas/internal/store"
	"github.com/shopspring/decimal"
)

// SyncService replaces the local ledger with a snapshot pulled from the
// backend or read from a file.
type SyncService struct {
	repo    store.Repository
	config  *config.Config
	fetcher Fetcher
	kinds   *snapshot.KindTable
	logger  *log.Logger
}

func NewSyncService(repo store.Repository, cfg *config.Config, fetcher Fetcher, kinds *snapshot.KindTable, logger *log.Logger) *SyncService {
	return &SyncService{repo: repo, config: cfg, fetcher: fetcher, kinds: kinds, logger: logger}
}

type SyncResult struct {
	Wallets      int
	Categories   int
	Transactions int
	Budgets      int
	// Rejected lists records dropped during normalisation.
	Rejected []string
	// Recovered lists records kept with a malformed amount read as zero.
	Recovered []string

	// Reconciliation against the server's /analytics expense breakdown.
	// Checked is false when no remote figures were available.
	Checked       bool
	RemoteExpense decimal.Decimal
	LocalExpense  decimal.Decimal
}

func (r *SyncResult) Matches() bool {
	return r.Checked && r.RemoteExpense.Equal(r.LocalExpense)
}

// Session builds the remote session from configuration.
func (ss *SyncService) Session() (remote.Session, error) {
	if strings.TrimSpace(ss.config.Remote.BaseURL) == "" {
		return remote.Session{}, ErrRemoteNotConfigured
	}
	uid := ss.config.UserID()
	if uid == uuid.Nil {
		return remote.Session{}, ErrUserNotConfigured
	}
	return remote.Session{
		BaseURL:     ss.config.Remote.BaseURL,
		UserID:      uid,
		AccessToken: ss.config.Remote.AccessToken,
	}, nil
}

// Sync pulls every collection from the backend, replaces the local ledger
// and compares the server's expense total with the local one.
func (ss *SyncService) Sync(ctx context.Context, limit int) (*SyncResult, error) {
	logger := ss.logger.WithComponent(log.ComponentSync)

	if ss.fetcher == nil {
		return nil, ErrRemoteNotConfigured
	}
	session, err := ss.Session()
	if err != nil {
		return nil, err
	}

	logger.Debug("fetching snapshot", "base_url", session.BaseURL, "limit", limit)
	doc, err := ss.fetcher.Fetch(ctx, session, limit)
	if err != nil {
		return nil, fmt.Errorf("sync failed: %w", err)
	}

	res, snap, err := ss.apply(ctx, doc, logger)
	if err != nil {
		return nil, err
	}

	remoteStats, err := ss.fetcher.Analytics(ctx, session)
	if err != nil {
		logger.Warn("could not fetch server analytics", log.FieldError, err.Error())
		return res, nil
	}
	ss.reconcile(res, remoteStats, snap, logger)
	return res, nil
}

// Import replaces the local ledger with the snapshot file at path.
func (ss *SyncService) Import(ctx context.Context, path string) (*SyncResult, error) {
	logger := ss.logger.WithComponent(log.ComponentImport)

	doc, err := snapshot.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, _, err := ss.apply(ctx, doc, logger)
	return res, err
}

// Export writes the local ledger to path as a snapshot document.
func (ss *SyncService) Export(ctx context.Context, path string) (*SyncResult, error) {
	snap, err := ss.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create export file: %w", err)
	}
	if err := snapshot.Encode(f, snapshot.FromSnapshot(snap, time.Now().UTC())); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	return counts(snap), nil
}

func (ss *SyncService) apply(ctx context.Context, doc snapshot.Document, logger *log.Logger) (*SyncResult, snapshot.Snapshot, error) {
	snap, normErr := snapshot.NewNormalizer(ss.kinds, ss.config.UserID()).Normalize(doc)

	rejected, recovered := splitRecordErrors(normErr)
	snap, dangling := dropDangling(snap)
	rejected = append(rejected, dangling...)

	for _, r := range rejected {
		logger.Warn("record skipped", "reason", r)
	}
	for _, r := range recovered {
		logger.Warn("record kept with zero amount", "reason", r)
	}

	if err := ss.repo.ReplaceAll(ctx, snap); err != nil {
		return nil, snapshot.Snapshot{}, fmt.Errorf("failed to replace ledger: %w", err)
	}

	res := counts(snap)
	res.Rejected = rejected
	res.Recovered = recovered
	logger.Info("ledger replaced",
		"wallets", res.Wallets, "categories", res.Categories,
		"transactions", res.Transactions, "budgets", res.Budgets,
		"rejected", len(rejected), "recovered", len(recovered))
	return res, snap, nil
}

func (ss *SyncService) reconcile(res *SyncResult, stats snapshot.AnalyticsRecord, snap snapshot.Snapshot, logger *log.Logger) {
	remoteTotal := decimal.Zero
	for _, b := range stats.Breakdown {
		remoteTotal = remoteTotal.Add(aggregator.ParseAmount(b.Value))
	}
	// the server joins expenses to categories, so it never counts the
	// uncategorized bucket
	local := decimal.Zero
	for _, share := range aggregator.CategoryBreakdown(snap.Transactions, snap.Categories) {
		if share.CategoryID != nil {
			local = local.Add(share.Amount)
		}
	}

	res.Checked = true
	res.RemoteExpense = remoteTotal
	res.LocalExpense = local

	if !res.Matches() {
		logger.Warn("expense totals differ from server",
			"local", local.String(), "remote", remoteTotal.String(),
			"hint", "the transaction limit may have truncated the history")
	}
}

func counts(s snapshot.Snapshot) *SyncResult {
	return &SyncResult{
		Wallets:      len(s.Wallets),
		Categories:   len(s.Categories),
		Transactions: len(s.Transactions),
		Budgets:      len(s.Budgets),
	}
}

// dropDangling removes transactions whose wallet is not in the snapshot and
// budgets that repeat a category.
func dropDangling(s snapshot.Snapshot) (snapshot.Snapshot, []string) {
	var dropped []string

	wallets := make(map[uuid.UUID]bool, len(s.Wallets))
	for _, w := range s.Wallets {
		wallets[w.ID] = true
	}
	txns := make([]model.Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if !wallets[t.WalletID] {
			dropped = append(dropped, fmt.Sprintf("transaction %s: unknown wallet %s", t.ID, t.WalletID))
			continue
		}
		txns = append(txns, t)
	}
	s.Transactions = txns

	seen := make(map[uuid.UUID]bool, len(s.Budgets))
	budgets := s.Budgets[:0:0]
	for _, b := range s.Budgets {
		if seen[b.CategoryID] {
			dropped = append(dropped, fmt.Sprintf("budget %s: duplicate budget for category %s", b.ID, b.CategoryID))
			continue
		}
		seen[b.CategoryID] = true
		budgets = append(budgets, b)
	}
	s.Budgets = budgets

	return s, dropped
}

// splitRecordErrors separates dropped records from records the normalizer
// kept at zero.
func splitRecordErrors(err error) (rejected, recovered []string) {
	if err == nil {
		return nil, nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			rej, rec := splitRecordErrors(e)
			rejected = append(rejected, rej...)
			recovered = append(recovered, rec...)
		}
		return rejected, recovered
	}
	var rec *snapshot.RecordError
	if errors.As(err, &rec) && rec.Recovered {
		return nil, []string{err.Error()}
	}
	return []string{err.Error()}, nil
}
