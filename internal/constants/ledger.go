package constants

import "github.com/hance08/kas/internal/model"

const MaxNameLen = 100

// Largest amount accepted from user input, in currency units.
const MaxAmount = "999999999999999"

var WalletTypes = []string{"cash", "bank", "e-wallet", "credit", "investment"}

// DefaultCategory is created on first use when the ledger has none.
type DefaultCategory struct {
	Name string
	Kind model.Kind
}

var DefaultCategories = []DefaultCategory{
	{Name: "Transportasi", Kind: model.KindExpense},
	{Name: "Makan", Kind: model.KindExpense},
	{Name: "Hiburan", Kind: model.KindExpense},
	{Name: "Lain-lain", Kind: model.KindExpense},
	{Name: "Gaji", Kind: model.KindIncome},
	{Name: "Bonus", Kind: model.KindIncome},
}
