package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/remote"
	"github.com/hance08/kas/internal/snapshot"
	"github.com/hance08/kas/internal/store"
)

const testUser = "6f1c1d5e-8f43-4d39-9c1a-2b2f0f6b7a10"

type fakeFetcher struct {
	doc      snapshot.Document
	stats    snapshot.AnalyticsRecord
	err      error
	statsErr error

	session remote.Session
	limit   int
}

func (f *fakeFetcher) Fetch(_ context.Context, s remote.Session, limit int) (snapshot.Document, error) {
	f.session, f.limit = s, limit
	return f.doc, f.err
}

func (f *fakeFetcher) Analytics(_ context.Context, _ remote.Session) (snapshot.AnalyticsRecord, error) {
	return f.stats, f.statsErr
}

func newTestService(t *testing.T, fetcher Fetcher) (*Service, *store.Store, *config.Config) {
	t.Helper()

	repo, err := store.NewStore(filepath.Join(t.TempDir(), "kas.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	cfg := config.NewDefault()
	cfg.User.ID = testUser
	cfg.Defaults.Timezone = "UTC"

	return NewService(Deps{Repo: repo, Config: cfg, Fetcher: fetcher}), repo, cfg
}

func mustWallet(t *testing.T, svc *Service, name, balance string) *model.Wallet {
	t.Helper()
	w, err := svc.Wallet.CreateWallet(context.Background(), WalletInput{Name: name, Type: "cash", OpeningBalance: balance})
	if err != nil {
		t.Fatalf("CreateWallet(%s): %v", name, err)
	}
	return w
}

func balanceOf(t *testing.T, svc *Service, name string) string {
	t.Helper()
	w, err := svc.Wallet.GetWalletByName(context.Background(), name)
	if err != nil {
		t.Fatalf("GetWalletByName(%s): %v", name, err)
	}
	return w.Balance
}

func TestCreateWalletRejectsDuplicate(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	mustWallet(t, svc, "Dompet", "1000")

	_, err := svc.Wallet.CreateWallet(context.Background(), WalletInput{Name: "dompet", Type: "cash"})
	if !errors.Is(err, ErrWalletExists) {
		t.Fatalf("err = %v, want ErrWalletExists", err)
	}
}

func TestWalletTreeGroupsByType(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)
	mustWallet(t, svc, "Dompet", "100")
	if _, err := svc.Wallet.CreateWallet(ctx, WalletInput{Name: "BCA", Type: "bank", OpeningBalance: "250.50"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Wallet.CreateWallet(ctx, WalletInput{Name: "Mandiri", Type: "bank", OpeningBalance: "49.50"}); err != nil {
		t.Fatal(err)
	}

	groups, err := svc.Wallet.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(groups) != 2 || groups[0].Type != "bank" || groups[1].Type != "cash" {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Total.String() != "300" || groups[0].Wallets[0].Name != "BCA" {
		t.Fatalf("bank group = %+v", groups[0])
	}
}

func TestCategoriesBootstrapDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	all, err := svc.Category.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(all) != len(constants.DefaultCategories) {
		t.Fatalf("got %d categories, want %d", len(all), len(constants.DefaultCategories))
	}

	// a second call must not duplicate them
	again, err := svc.Category.ListCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(all) {
		t.Fatalf("second list has %d categories", len(again))
	}

	income, err := svc.Category.ByKind(ctx, model.KindIncome)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range income {
		if c.Kind != model.KindIncome {
			t.Fatalf("ByKind returned %+v", c)
		}
	}
}

func TestCreateCategoryDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	if _, err := svc.Category.CreateCategory(ctx, "Kopi", model.KindExpense); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := svc.Category.CreateCategory(ctx, "KOPI", model.KindExpense); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("err = %v, want ErrCategoryExists", err)
	}
	if _, err := svc.Category.CreateCategory(ctx, "Misc", model.KindUnknown); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestTransactionMovesBalance(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)
	mustWallet(t, svc, "Dompet", "100000")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	out, err := svc.Transaction.CreateTransaction(ctx, TransactionInput{
		WalletName: "Dompet", CategoryName: "Makan", Kind: model.KindExpense, Amount: "25000.50", OccurredAt: day, Note: " lunch ",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if got := balanceOf(t, svc, "Dompet"); got != "74999.5" {
		t.Fatalf("balance after expense = %s", got)
	}
	if out.NoteText() != "lunch" || out.CategoryID == nil {
		t.Fatalf("transaction = %+v", out)
	}

	if _, err := svc.Transaction.CreateTransaction(ctx, TransactionInput{
		WalletName: "Dompet", CategoryName: "Gaji", Kind: model.KindIncome, Amount: "500000", OccurredAt: day,
	}); err != nil {
		t.Fatalf("CreateTransaction income: %v", err)
	}
	if got := balanceOf(t, svc, "Dompet"); got != "574999.5" {
		t.Fatalf("balance after income = %s", got)
	}

	if err := svc.Transaction.DeleteTransaction(ctx, out.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if got := balanceOf(t, svc, "Dompet"); got != "600000" {
		t.Fatalf("balance after delete = %s", got)
	}
}

func TestTransactionValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)
	mustWallet(t, svc, "Dompet", "0")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   TransactionInput
		want error
	}{
		{"kind mismatch", TransactionInput{WalletName: "Dompet", CategoryName: "Gaji", Kind: model.KindExpense, Amount: "10", OccurredAt: day}, ErrCategoryKindMismatch},
		{"unknown wallet", TransactionInput{WalletName: "Nope", Kind: model.KindExpense, Amount: "10", OccurredAt: day}, store.ErrRecordNotFound},
		{"unknown category", TransactionInput{WalletName: "Dompet", CategoryName: "Nope", Kind: model.KindExpense, Amount: "10", OccurredAt: day}, store.ErrRecordNotFound},
		{"zero amount", TransactionInput{WalletName: "Dompet", Kind: model.KindExpense, Amount: "0", OccurredAt: day}, nil},
		{"no kind", TransactionInput{WalletName: "Dompet", Amount: "10", OccurredAt: day}, nil},
		{"no date", TransactionInput{WalletName: "Dompet", Kind: model.KindExpense, Amount: "10"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Transaction.CreateTransaction(ctx, tt.in)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if got := balanceOf(t, svc, "Dompet"); got != "0" {
		t.Fatalf("balance moved on failed inserts: %s", got)
	}
}

func TestFindTransactionByPrefix(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)
	mustWallet(t, svc, "Dompet", "0")

	tx, err := svc.Transaction.CreateTransaction(ctx, TransactionInput{
		WalletName: "Dompet", Kind: model.KindIncome, Amount: "5", OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Transaction.FindTransaction(ctx, tx.ID.String()[:8])
	if err != nil {
		t.Fatalf("FindTransaction: %v", err)
	}
	if got.ID != tx.ID || got.WalletName != "Dompet" || got.ShortID() != tx.ID.String()[:8] {
		t.Fatalf("detail = %+v", got)
	}

	if _, err := svc.Transaction.FindTransaction(ctx, "zzzz"); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestBudgetSpentCountsCurrentMonthOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)
	svc.Budget.now = func() time.Time { return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC) }
	mustWallet(t, svc, "Dompet", "10000000")

	add := func(kind model.Kind, category, amount string, at time.Time) {
		t.Helper()
		if _, err := svc.Transaction.CreateTransaction(ctx, TransactionInput{
			WalletName: "Dompet", CategoryName: category, Kind: kind, Amount: amount, OccurredAt: at,
		}); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}
	add(model.KindExpense, "Makan", "200000", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	add(model.KindExpense, "Makan", "400000", time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC))
	add(model.KindExpense, "Makan", "999999", time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC))
	add(model.KindExpense, "Makan", "999999", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	add(model.KindExpense, "Hiburan", "50000", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))

	if _, err := svc.Budget.SetBudget(ctx, "Makan", "500000"); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	budgets, err := svc.Budget.ListBudgets(ctx)
	if err != nil {
		t.Fatalf("ListBudgets: %v", err)
	}
	if len(budgets) != 1 || budgets[0].Spent != "600000" {
		t.Fatalf("budgets = %+v", budgets)
	}

	ov, err := svc.Budget.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ov.OverBudgetCount != 1 || ov.Statuses[0].PercentUsed.String() != "100" || ov.Statuses[0].OverPercent.String() != "20" {
		t.Fatalf("overview = %+v", ov)
	}
}

func TestSetBudgetRejectsIncomeCategory(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	if _, err := svc.Budget.SetBudget(context.Background(), "Gaji", "100"); !errors.Is(err, ErrNotExpenseCategory) {
		t.Fatalf("err = %v, want ErrNotExpenseCategory", err)
	}
}

func TestSetBudgetReplacesLimit(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	first, err := svc.Budget.SetBudget(ctx, "Makan", "100")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Budget.SetBudget(ctx, "makan", "250"); err != nil {
		t.Fatal(err)
	}
	budgets, err := svc.Budget.ListBudgets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(budgets) != 1 || budgets[0].Amount != "250" || budgets[0].ID != first.ID || budgets[0].Spent != "0" {
		t.Fatalf("budgets = %+v", budgets)
	}
}

func TestDashboardAndAnalytics(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)
	mustWallet(t, svc, "Dompet", "1000")
	mustWallet(t, svc, "Bank", "2000")
	now := time.Now()

	for _, in := range []TransactionInput{
		{WalletName: "Dompet", CategoryName: "Makan", Kind: model.KindExpense, Amount: "300", OccurredAt: now},
		{WalletName: "Bank", CategoryName: "Gaji", Kind: model.KindIncome, Amount: "500", OccurredAt: now},
		{WalletName: "Bank", CategoryName: "Hiburan", Kind: model.KindExpense, Amount: "100", OccurredAt: now},
	} {
		if _, err := svc.Transaction.CreateTransaction(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	dash, err := svc.Analytics.Dashboard(ctx, 2)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.TotalBalance.String() != "3100" || dash.Income.String() != "500" || dash.Expense.String() != "400" || dash.Net.String() != "100" {
		t.Fatalf("summary = %+v", dash.Summary)
	}
	if dash.WalletCount != 2 || len(dash.Recent) != 2 {
		t.Fatalf("dashboard = %+v", dash)
	}

	a, err := svc.Analytics.Analytics(ctx, 0)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if a.TotalExpense.String() != "400" || a.TopCategory == nil || a.TopCategory.Name != "Makan" {
		t.Fatalf("analytics = %+v", a)
	}
	if len(a.Monthly) == 0 {
		t.Fatal("expected a monthly series")
	}
}

func sampleDocument() snapshot.Document {
	wallet := "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e01"
	food := "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e02"
	salary := "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e03"
	at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	return snapshot.Document{
		Wallets: []snapshot.WalletRecord{{ID: wallet, Type: "cash", Name: "Dompet", Balance: "1500000", CreatedAt: at}},
		Categories: []snapshot.CategoryRecord{
			{ID: food, Name: "Makan", Kind: "out", CreatedAt: at},
			{ID: salary, Name: "Gaji", Kind: "in", CreatedAt: at},
		},
		Transactions: []snapshot.TransactionRecord{
			{ID: "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e04", WalletID: wallet, CategoryID: &food, Amount: "50000", Kind: "out", OccurredAt: at, CreatedAt: at},
			{ID: "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e05", WalletID: wallet, CategoryID: &salary, Amount: "2000000", Kind: "in", OccurredAt: at, CreatedAt: at},
			{ID: "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e06", WalletID: "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7eff", Amount: "10", Kind: "out", OccurredAt: at, CreatedAt: at},
			{ID: "broken", WalletID: wallet, Amount: "10", Kind: "out", OccurredAt: at, CreatedAt: at},
		},
		Budgets: []snapshot.BudgetRecord{
			{ID: "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e07", CategoryID: food, CategoryName: "Makan", Amount: "500000", Spent: "50000", CreatedAt: at},
		},
	}
}

func TestSyncReplacesLedgerAndReconciles(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{
		doc:   sampleDocument(),
		stats: snapshot.AnalyticsRecord{Breakdown: []snapshot.BreakdownRecord{{Name: "Makan", Value: "50000"}}},
	}
	svc, repo, _ := newTestService(t, fetcher)
	mustWallet(t, svc, "Old", "1")

	res, err := svc.Sync.Sync(ctx, 25)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if fetcher.limit != 25 || fetcher.session.UserID != uuid.MustParse(testUser) {
		t.Fatalf("fetch called with %+v limit %d", fetcher.session, fetcher.limit)
	}
	if res.Wallets != 1 || res.Categories != 2 || res.Transactions != 2 || res.Budgets != 1 {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Rejected) != 2 {
		t.Fatalf("rejected = %v", res.Rejected)
	}
	if !res.Matches() {
		t.Fatalf("expected totals to match: local %s remote %s", res.LocalExpense, res.RemoteExpense)
	}

	if _, err := repo.GetWalletByName(ctx, "Old"); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("old wallet survived sync: %v", err)
	}
}

func TestSyncKeepsWalletWithMalformedBalance(t *testing.T) {
	ctx := context.Background()
	doc := sampleDocument()
	doc.Wallets[0].Balance = "1.500.000"
	svc, _, _ := newTestService(t, &fakeFetcher{doc: doc, statsErr: errors.New("offline")})

	res, err := svc.Sync.Sync(ctx, 50)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Wallets != 1 || res.Transactions != 2 {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Recovered) != 1 || len(res.Rejected) != 2 {
		t.Fatalf("recovered = %v, rejected = %v", res.Recovered, res.Rejected)
	}
	if got := balanceOf(t, svc, "Dompet"); got != "0" {
		t.Errorf("balance = %q, want 0", got)
	}

	dash, err := svc.Analytics.Dashboard(ctx, 5)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Expense.String() != "50000" || dash.Income.String() != "2000000" {
		t.Errorf("dashboard expense %s income %s", dash.Expense, dash.Income)
	}
}

func TestSyncReconcileIgnoresUncategorized(t *testing.T) {
	doc := sampleDocument()
	doc.Transactions = append(doc.Transactions, snapshot.TransactionRecord{
		ID:         "2b8e6f0a-1c1d-4c4e-9a51-3f0d6c1b7e08",
		WalletID:   doc.Wallets[0].ID,
		Amount:     "10",
		Kind:       "out",
		OccurredAt: doc.Wallets[0].CreatedAt,
		CreatedAt:  doc.Wallets[0].CreatedAt,
	})
	fetcher := &fakeFetcher{
		doc:   doc,
		stats: snapshot.AnalyticsRecord{Breakdown: []snapshot.BreakdownRecord{{Name: "Makan", Value: "50000"}}},
	}
	svc, _, _ := newTestService(t, fetcher)

	res, err := svc.Sync.Sync(context.Background(), 50)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Transactions != 3 || !res.Matches() {
		t.Fatalf("local %s remote %s, result %+v", res.LocalExpense, res.RemoteExpense, res)
	}
}

func TestSyncMismatchIsNotFatal(t *testing.T) {
	fetcher := &fakeFetcher{
		doc:   sampleDocument(),
		stats: snapshot.AnalyticsRecord{Breakdown: []snapshot.BreakdownRecord{{Name: "Makan", Value: "90000"}}},
	}
	svc, _, _ := newTestService(t, fetcher)

	res, err := svc.Sync.Sync(context.Background(), 50)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !res.Checked || res.Matches() {
		t.Fatalf("result = %+v", res)
	}

	fetcher.statsErr = errors.New("boom")
	res, err = svc.Sync.Sync(context.Background(), 50)
	if err != nil {
		t.Fatalf("Sync without analytics: %v", err)
	}
	if res.Checked {
		t.Fatal("expected reconciliation to be skipped")
	}
}

func TestSyncNeedsUserAndRemote(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc, _, cfg := newTestService(t, fetcher)

	cfg.User.ID = ""
	if _, err := svc.Sync.Sync(context.Background(), 0); !errors.Is(err, ErrUserNotConfigured) {
		t.Fatalf("err = %v, want ErrUserNotConfigured", err)
	}

	cfg.User.ID = testUser
	cfg.Remote.BaseURL = ""
	if _, err := svc.Sync.Sync(context.Background(), 0); !errors.Is(err, ErrRemoteNotConfigured) {
		t.Fatalf("err = %v, want ErrRemoteNotConfigured", err)
	}

	cfg.Remote.BaseURL = "http://localhost:8080/api/v1"
	fetcher.err = errors.New("connection refused")
	if _, err := svc.Sync.Sync(context.Background(), 0); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestExportThenImport(t *testing.T) {
	ctx := context.Background()
	src, _, _ := newTestService(t, &fakeFetcher{doc: sampleDocument()})
	if _, err := src.Sync.Sync(ctx, 0); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "ledger.json")
	exported, err := src.Sync.Export(ctx, path)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if exported.Transactions != 2 {
		t.Fatalf("exported = %+v", exported)
	}

	dst, repo, _ := newTestService(t, nil)
	imported, err := dst.Sync.Import(ctx, path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(imported.Rejected) != 0 || imported.Wallets != 1 || imported.Budgets != 1 {
		t.Fatalf("imported = %+v", imported)
	}

	w, err := repo.GetWalletByName(ctx, "Dompet")
	if err != nil || w.Balance != "1500000" {
		t.Fatalf("wallet = %+v, %v", w, err)
	}
}

func TestImportMissingFile(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	if _, err := svc.Sync.Import(context.Background(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error")
	}
}
