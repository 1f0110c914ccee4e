package aggregator

import (
	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

type Level int

const (
	LevelOK Level = iota
	LevelWarning
	LevelDanger
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelDanger:
		return "danger"
	default:
		return "ok"
	}
}

// Thresholds are the usage percentages above which a budget is flagged.
type Thresholds struct {
	Warn   decimal.Decimal
	Danger decimal.Decimal
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Warn:   decimal.NewFromInt(75),
		Danger: decimal.NewFromInt(90),
	}
}

// Status is the derived state of one budget.
//
// PercentUsed is capped at 100 for progress bars. Ratio is the uncapped
// usage percentage, and OverPercent is how far Ratio exceeds 100.
type Status struct {
	BudgetID     uuid.UUID       `json:"budget_id"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentUsed  decimal.Decimal `json:"percent_used"`
	Ratio        decimal.Decimal `json:"ratio"`
	OverPercent  decimal.Decimal `json:"over_percent"`
	IsOverBudget bool            `json:"is_over_budget"`
}

func BudgetStatus(b model.Budget) Status {
	amount := ParseAmount(b.Amount)
	spent := ParseAmount(b.Spent)

	ratio := percentOf(spent, amount)
	used := decimal.Min(ratio, hundred)
	over := decimal.Max(ratio.Sub(hundred), decimal.Zero)

	return Status{
		BudgetID:     b.ID,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Amount:       amount,
		Spent:        spent,
		Remaining:    amount.Sub(spent),
		PercentUsed:  used,
		Ratio:        ratio,
		OverPercent:  over,
		IsOverBudget: spent.GreaterThan(amount),
	}
}

// Level classifies the status against th. An over-budget status is always
// LevelDanger.
func (s Status) Level(th Thresholds) Level {
	switch {
	case s.IsOverBudget || s.Ratio.GreaterThan(th.Danger):
		return LevelDanger
	case s.Ratio.GreaterThan(th.Warn):
		return LevelWarning
	default:
		return LevelOK
	}
}

type Overview struct {
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	TotalRemaining  decimal.Decimal `json:"total_remaining"`
	OverBudgetCount int             `json:"over_budget_count"`
	Statuses        []Status        `json:"statuses"`
}

// BudgetOverview computes a status for every budget, in input order, plus
// the page totals.
func BudgetOverview(budgets []model.Budget) Overview {
	ov := Overview{
		TotalAmount: decimal.Zero,
		TotalSpent:  decimal.Zero,
		Statuses:    make([]Status, 0, len(budgets)),
	}
	for _, b := range budgets {
		st := BudgetStatus(b)
		ov.TotalAmount = ov.TotalAmount.Add(st.Amount)
		ov.TotalSpent = ov.TotalSpent.Add(st.Spent)
		if st.IsOverBudget {
			ov.OverBudgetCount++
		}
		ov.Statuses = append(ov.Statuses, st)
	}
	ov.TotalRemaining = ov.TotalAmount.Sub(ov.TotalSpent)
	return ov
}
