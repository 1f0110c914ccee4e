package aggregator

import (
	"sort"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

// UncategorizedName labels expenses with no known category.
const UncategorizedName = "Uncategorized"

// CategoryShare is one slice of the expense breakdown. CategoryID is nil for
// the uncategorized bucket.
type CategoryShare struct {
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percent    decimal.Decimal `json:"percent"`
}

// CategoryBreakdown groups expense transactions by category.
//
// Every expense category in categories gets an entry, zero when nothing was
// spent on it. Expenses without a category, or pointing at a category that
// is not in the list, are pooled under UncategorizedName. Entries are ordered
// by amount descending, then by name ascending.
func CategoryBreakdown(txns []model.Transaction, categories []model.Category) []CategoryShare {
	known := make(map[uuid.UUID]model.Category, len(categories))
	for _, c := range categories {
		known[c.ID] = c
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, c := range categories {
		if c.Kind == model.KindExpense {
			sums[c.ID] = decimal.Zero
		}
	}

	var (
		uncategorized    decimal.Decimal
		hasUncategorized bool
	)
	for _, t := range txns {
		if t.Kind != model.KindExpense {
			continue
		}
		amount := ParseAmount(t.Amount)
		if t.CategoryID != nil {
			if _, ok := known[*t.CategoryID]; ok {
				sums[*t.CategoryID] = sums[*t.CategoryID].Add(amount)
				continue
			}
		}
		uncategorized = uncategorized.Add(amount)
		hasUncategorized = true
	}

	total := uncategorized
	for _, v := range sums {
		total = total.Add(v)
	}

	shares := make([]CategoryShare, 0, len(sums)+1)
	for id, amount := range sums {
		shares = append(shares, CategoryShare{
			CategoryID: &id,
			Name:       known[id].Name,
			Amount:     amount,
			Percent:    percentOf(amount, total),
		})
	}
	if hasUncategorized {
		shares = append(shares, CategoryShare{
			Name:    UncategorizedName,
			Amount:  uncategorized,
			Percent: percentOf(uncategorized, total),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		a, b := shares[i], shares[j]
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c > 0
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return shareKey(a) < shareKey(b)
	})

	return shares
}

func shareKey(s CategoryShare) string {
	if s.CategoryID == nil {
		return ""
	}
	return s.CategoryID.String()
}

// BreakdownTotal sums the amounts of a breakdown.
func BreakdownTotal(shares []CategoryShare) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	return total
}
