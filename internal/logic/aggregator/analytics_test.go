package aggregator

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
)

func TestSummarize(t *testing.T) {
	wallets := []model.Wallet{{Balance: "100000"}, {Balance: "25000.5"}}
	now := time.Now()
	txns := []model.Transaction{
		txn("1000000", model.KindIncome, nil, now),
		txn("80000", model.KindExpense, nil, now),
	}

	s := Summarize(wallets, txns)

	assertDec(t, "TotalBalance", s.TotalBalance, "125000.5")
	assertDec(t, "Income", s.Income, "1000000")
	assertDec(t, "Expense", s.Expense, "80000")
	assertDec(t, "Net", s.Net, "920000")
}

func TestAnalyze(t *testing.T) {
	makan, hiburan := uuid.New(), uuid.New()
	categories := []model.Category{
		{ID: makan, Name: "Makan", Kind: model.KindExpense},
		{ID: hiburan, Name: "Hiburan", Kind: model.KindExpense},
	}
	var txns []model.Transaction
	for m := time.January; m <= time.August; m++ {
		at := time.Date(2025, m, 3, 0, 0, 0, 0, time.UTC)
		txns = append(txns,
			txn("1000", model.KindIncome, nil, at),
			txn("100", model.KindExpense, &makan, at),
		)
	}
	txns = append(txns, txn("50", model.KindExpense, &hiburan, time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC)))
	budgets := []model.Budget{
		{CategoryID: makan, CategoryName: "Makan", Amount: "50", Spent: "100"},
		{CategoryID: hiburan, CategoryName: "Hiburan", Amount: "100", Spent: "50"},
	}

	a := Analyze(txns, categories, budgets, Options{Months: DefaultMonths})

	assertDec(t, "TotalExpense", a.TotalExpense, "850")
	if a.TopCategory == nil || a.TopCategory.Name != "Makan" {
		t.Fatalf("TopCategory = %+v, want Makan", a.TopCategory)
	}
	if len(a.Monthly) != DefaultMonths || a.Monthly[0].Label != "Mar 2025" {
		t.Fatalf("Monthly = %+v", a.Monthly)
	}
	if len(a.Budgets) != 2 || len(a.OverBudget) != 1 || a.OverBudget[0].CategoryName != "Makan" {
		t.Fatalf("budget rows = %+v, over = %+v", a.Budgets, a.OverBudget)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil, nil, nil, Options{})

	if a.TopCategory != nil {
		t.Errorf("TopCategory = %+v, want nil", a.TopCategory)
	}
	if !a.TotalExpense.IsZero() {
		t.Errorf("TotalExpense = %s, want 0", a.TotalExpense)
	}

	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"breakdown":[]`, `"monthly":[]`, `"budgets":[]`, `"over_budget":[]`, `"total_expense":"0"`} {
		if !strings.Contains(string(raw), field) {
			t.Errorf("json %s missing %s", raw, field)
		}
	}
}
