package aggregator

import (
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

// Summary holds the dashboard card values.
type Summary struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
}

func TotalBalance(wallets []model.Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(ParseAmount(w.Balance))
	}
	return total
}

func TotalByKind(txns []model.Transaction, kind model.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Kind == kind {
			total = total.Add(ParseAmount(t.Amount))
		}
	}
	return total
}

// Summarize computes the dashboard totals. Wallet balances are running
// totals kept by the backend and are not derived from txns.
func Summarize(wallets []model.Wallet, txns []model.Transaction) Summary {
	income := TotalByKind(txns, model.KindIncome)
	expense := TotalByKind(txns, model.KindExpense)

	return Summary{
		TotalBalance: TotalBalance(wallets),
		Income:       income,
		Expense:      expense,
		Net:          income.Sub(expense),
	}
}
