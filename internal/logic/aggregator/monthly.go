package aggregator

import (
	"sort"
	"time"

	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

// MonthLabelLayout renders period labels such as "Jan 2025".
const MonthLabelLayout = "Jan 2006"

type MonthlyPoint struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlySeries buckets transactions by the calendar month of OccurredAt in
// loc (UTC when nil). Transactions of unknown kind are ignored. The result
// is ordered oldest first.
func MonthlySeries(txns []model.Transaction, loc *time.Location) []MonthlyPoint {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[int]*MonthlyPoint)
	for _, t := range txns {
		if !t.Kind.Valid() {
			continue
		}
		at := t.OccurredAt.In(loc)
		key := at.Year()*12 + int(at.Month()) - 1

		p, ok := buckets[key]
		if !ok {
			p = &MonthlyPoint{
				Year:    at.Year(),
				Month:   at.Month(),
				Label:   time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, loc).Format(MonthLabelLayout),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[key] = p
		}

		amount := ParseAmount(t.Amount)
		if t.Kind == model.KindIncome {
			p.Income = p.Income.Add(amount)
		} else {
			p.Expense = p.Expense.Add(amount)
		}
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	series := make([]MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		p := *buckets[k]
		p.Net = p.Income.Sub(p.Expense)
		series = append(series, p)
	}
	return series
}

// LastMonths keeps the most recent n points of a chronological series.
// n <= 0 keeps everything.
func LastMonths(series []MonthlyPoint, n int) []MonthlyPoint {
	if n <= 0 || len(series) <= n {
		out := make([]MonthlyPoint, len(series))
		copy(out, series)
		return out
	}
	out := make([]MonthlyPoint, n)
	copy(out, series[len(series)-n:])
	return out
}
