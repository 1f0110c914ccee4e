package aggregator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func assertDec(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(t, want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func txn(amount string, kind model.Kind, cat *uuid.UUID, at time.Time) model.Transaction {
	return model.Transaction{
		ID:         uuid.New(),
		Amount:     amount,
		Kind:       kind,
		CategoryID: cat,
		OccurredAt: at,
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"50000", "50000"},
		{" 12.34 ", "12.34"},
		{"-7.5", "-7.5"},
		{"0.1", "0.1"},
		{"", "0"},
		{"abc", "0"},
		{"12,50", "0"},
		{"NaN", "0"},
		{"Infinity", "0"},
		{"1e3", "0"},
		{"1e-50000000", "0"},
	}
	for _, c := range cases {
		assertDec(t, "ParseAmount("+c.in+")", ParseAmount(c.in), c.want)
	}
}

func TestExponentAmountsDoNotExpand(t *testing.T) {
	got := TotalBalance([]model.Wallet{{Balance: "100"}, {Balance: "1e-50000000"}})
	assertDec(t, "TotalBalance", got, "100")

	st := BudgetStatus(model.Budget{Amount: "1e-20000000", Spent: "5"})
	if !st.Amount.IsZero() || !st.IsOverBudget {
		t.Errorf("BudgetStatus = %+v", st)
	}
}

func TestTotalBalance(t *testing.T) {
	if got := TotalBalance(nil); !got.IsZero() {
		t.Fatalf("TotalBalance(nil) = %s, want 0", got)
	}

	wallets := []model.Wallet{
		{Name: "Cash", Balance: "150000.50"},
		{Name: "Bank", Balance: "2500000"},
		{Name: "Card", Balance: "-100000.25"},
		{Name: "Broken", Balance: "n/a"},
	}
	assertDec(t, "TotalBalance", TotalBalance(wallets), "2550000.25")
}

func TestTotalByKindIsOrderIndependent(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txn("0.1", model.KindExpense, nil, now),
		txn("0.2", model.KindIncome, nil, now),
		txn("1000000", model.KindIncome, nil, now),
		txn("33.33", model.KindExpense, nil, now),
	}
	reversed := make([]model.Transaction, len(txns))
	for i := range txns {
		reversed[len(txns)-1-i] = txns[i]
	}

	all := decimal.Zero
	for _, tx := range txns {
		all = all.Add(ParseAmount(tx.Amount))
	}

	for _, list := range [][]model.Transaction{txns, reversed} {
		sum := TotalByKind(list, model.KindIncome).Add(TotalByKind(list, model.KindExpense))
		if !sum.Equal(all) {
			t.Fatalf("in+out = %s, want %s", sum, all)
		}
	}
	assertDec(t, "income", TotalByKind(txns, model.KindIncome), "1000000.2")
	assertDec(t, "expense", TotalByKind(txns, model.KindExpense), "33.43")
}

func TestMakanExample(t *testing.T) {
	makan := uuid.New()
	gaji := uuid.New()
	categories := []model.Category{
		{ID: makan, Name: "Makan", Kind: model.KindExpense},
		{ID: gaji, Name: "Gaji", Kind: model.KindIncome},
	}
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txn("50000", model.KindExpense, &makan, now),
		txn("30000", model.KindExpense, &makan, now),
		txn("1000000", model.KindIncome, nil, now),
	}

	assertDec(t, "out", TotalByKind(txns, model.KindExpense), "80000")
	assertDec(t, "in", TotalByKind(txns, model.KindIncome), "1000000")

	got := CategoryBreakdown(txns, categories)
	if len(got) != 1 {
		t.Fatalf("breakdown has %d entries, want 1: %+v", len(got), got)
	}
	if got[0].Name != "Makan" || got[0].CategoryID == nil || *got[0].CategoryID != makan {
		t.Fatalf("unexpected entry %+v", got[0])
	}
	assertDec(t, "amount", got[0].Amount, "80000")
	assertDec(t, "percent", got[0].Percent, "100")
}

func TestCategoryBreakdown(t *testing.T) {
	food, fuel, fun, salary := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	categories := []model.Category{
		{ID: food, Name: "Makan", Kind: model.KindExpense},
		{ID: fuel, Name: "Transportasi", Kind: model.KindExpense},
		{ID: fun, Name: "Hiburan", Kind: model.KindExpense},
		{ID: salary, Name: "Gaji", Kind: model.KindIncome},
	}
	stray := uuid.New()
	now := time.Now()
	txns := []model.Transaction{
		txn("100", model.KindExpense, &fuel, now),
		txn("100", model.KindExpense, &food, now),
		txn("50", model.KindExpense, nil, now),
		txn("50", model.KindExpense, &stray, now),
		txn("999", model.KindIncome, &salary, now),
	}

	got := CategoryBreakdown(txns, categories)

	wantNames := []string{"Makan", "Transportasi", "Uncategorized", "Hiburan"}
	wantAmounts := []string{"100", "100", "100", "0"}
	if len(got) != len(wantNames) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(wantNames), got)
	}
	percent := decimal.Zero
	for i, s := range got {
		if s.Name != wantNames[i] {
			t.Errorf("entry %d name = %q, want %q", i, s.Name, wantNames[i])
		}
		assertDec(t, s.Name, s.Amount, wantAmounts[i])
		percent = percent.Add(s.Percent)
	}
	if got[2].CategoryID != nil {
		t.Errorf("uncategorized entry carries id %v", got[2].CategoryID)
	}
	for i, want := range []uuid.UUID{food, fuel} {
		if got[i].CategoryID == nil || *got[i].CategoryID != want {
			t.Errorf("entry %d id = %v, want %v", i, got[i].CategoryID, want)
		}
	}
	// thirds round to 33.33 each
	if percent.Sub(hundred).Abs().GreaterThan(decimal.RequireFromString("0.05")) {
		t.Errorf("percentages sum to %s, want ~100", percent)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	if got := CategoryBreakdown(nil, nil); len(got) != 0 {
		t.Fatalf("CategoryBreakdown(nil, nil) = %+v, want empty", got)
	}

	cat := uuid.New()
	got := CategoryBreakdown(nil, []model.Category{{ID: cat, Name: "Makan", Kind: model.KindExpense}})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	assertDec(t, "amount", got[0].Amount, "0")
	assertDec(t, "percent", got[0].Percent, "0")
}

func TestCategoryBreakdownDoesNotMutateInput(t *testing.T) {
	cat := uuid.New()
	categories := []model.Category{{ID: cat, Name: "Makan", Kind: model.KindExpense}}
	txns := []model.Transaction{txn("10", model.KindExpense, &cat, time.Now())}

	got := CategoryBreakdown(txns, categories)
	*got[0].CategoryID = uuid.Nil

	if categories[0].ID != cat || *txns[0].CategoryID != cat {
		t.Fatal("breakdown result aliases its inputs")
	}
}

func TestMonthlySeries(t *testing.T) {
	txns := []model.Transaction{
		txn("300", model.KindExpense, nil, time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)),
		txn("1000", model.KindIncome, nil, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		txn("200", model.KindExpense, nil, time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)),
		txn("500", model.KindIncome, nil, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)),
		{Amount: "77", Kind: model.KindUnknown, OccurredAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := MonthlySeries(txns, nil)

	want := []struct {
		label           string
		income, expense string
		net             string
	}{
		{"Dec 2024", "500", "0", "500"},
		{"Jan 2025", "1000", "200", "800"},
		{"Feb 2025", "0", "300", "-300"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		p := got[i]
		if p.Label != w.label {
			t.Errorf("point %d label = %q, want %q", i, p.Label, w.label)
		}
		assertDec(t, w.label+" income", p.Income, w.income)
		assertDec(t, w.label+" expense", p.Expense, w.expense)
		assertDec(t, w.label+" net", p.Net, w.net)
	}
}

func TestMonthlySeriesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on Jan 31 is already Feb 1 in UTC+7
	txns := []model.Transaction{
		txn("10", model.KindExpense, nil, time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC)),
	}

	if got := MonthlySeries(txns, nil); got[0].Label != "Jan 2025" {
		t.Errorf("UTC label = %q, want Jan 2025", got[0].Label)
	}
	if got := MonthlySeries(txns, jakarta); got[0].Label != "Feb 2025" || got[0].Month != time.February {
		t.Errorf("WIB point = %+v, want Feb 2025", got[0])
	}
}

func TestLastMonths(t *testing.T) {
	series := make([]MonthlyPoint, 8)
	for i := range series {
		series[i] = MonthlyPoint{Year: 2025, Month: time.Month(i + 1)}
	}

	got := LastMonths(series, 6)
	if len(got) != 6 || got[0].Month != time.March || got[5].Month != time.August {
		t.Fatalf("LastMonths(8, 6) = %+v", got)
	}
	if got := LastMonths(series, 0); len(got) != 8 {
		t.Fatalf("LastMonths(n=0) kept %d points, want 8", len(got))
	}
	if got := LastMonths(series[:2], 6); len(got) != 2 {
		t.Fatalf("LastMonths(2, 6) kept %d points, want 2", len(got))
	}
}
