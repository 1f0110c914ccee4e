package aggregator

import (
	"time"

	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultMonths is how many monthly points the analytics page keeps.
const DefaultMonths = 6

type Options struct {
	// Months trims the monthly series to the most recent N points.
	// Zero or less keeps every month.
	Months   int
	Location *time.Location
}

type Analytics struct {
	TotalExpense decimal.Decimal `json:"total_expense"`
	TopCategory  *CategoryShare  `json:"top_category,omitempty"`
	Breakdown    []CategoryShare `json:"breakdown"`
	Monthly      []MonthlyPoint  `json:"monthly"`
	Budgets      []Status        `json:"budgets"`
	OverBudget   []Status        `json:"over_budget"`
}

func Analyze(txns []model.Transaction, categories []model.Category, budgets []model.Budget, opts Options) Analytics {
	breakdown := CategoryBreakdown(txns, categories)

	a := Analytics{
		TotalExpense: BreakdownTotal(breakdown),
		Breakdown:    breakdown,
		Monthly:      LastMonths(MonthlySeries(txns, opts.Location), opts.Months),
		Budgets:      make([]Status, 0, len(budgets)),
		OverBudget:   []Status{},
	}

	if len(breakdown) > 0 && breakdown[0].Amount.IsPositive() {
		top := breakdown[0]
		a.TopCategory = &top
	}

	for _, b := range budgets {
		st := BudgetStatus(b)
		a.Budgets = append(a.Budgets, st)
		if st.IsOverBudget {
			a.OverBudget = append(a.OverBudget, st)
		}
	}

	return a
}
