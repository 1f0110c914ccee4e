package views

import (
	"github.com/hance08/kas/internal/model"
	"github.com/pterm/pterm"
)

func KindLabel(k model.Kind) string {
	switch k {
	case model.KindIncome:
		return "Income"
	case model.KindExpense:
		return "Expense"
	default:
		return "Other"
	}
}

// KindColor paints s green for income and red for expense.
func KindColor(k model.Kind, s string) string {
	switch k {
	case model.KindIncome:
		return pterm.Green(s)
	case model.KindExpense:
		return pterm.Red(s)
	default:
		return s
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
