package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const barWidth = 20

// ProgressBar draws a fixed-width bar for a 0-100 percentage. Values
// outside the range are clamped.
func ProgressBar(percent decimal.Decimal, width int) string {
	if width <= 0 {
		return ""
	}
	percent = decimal.Min(decimal.Max(percent, decimal.Zero), decimal.NewFromInt(100))
	filled := int(percent.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).Round(0).IntPart())
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// LevelColor paints s by budget level.
func LevelColor(l aggregator.Level, s string) string {
	switch l {
	case aggregator.LevelDanger:
		return pterm.Red(s)
	case aggregator.LevelWarning:
		return pterm.Yellow(s)
	default:
		return pterm.Green(s)
	}
}

type BudgetView struct {
	format     utils.Formatter
	thresholds aggregator.Thresholds
}

func NewBudgetView(f utils.Formatter, th aggregator.Thresholds) *BudgetView {
	return &BudgetView{format: f, thresholds: th}
}

// Render prints one card per budget and the page totals. from is the start
// of the budget period.
func (v *BudgetView) Render(ov aggregator.Overview, from time.Time) error {
	if len(ov.Statuses) == 0 {
		pterm.Warning.Println("No budgets yet, set one with 'kas budget set <category> <amount>'")
		return nil
	}

	pterm.DefaultSection.Printf("Budgets for %s", from.Format(aggregator.MonthLabelLayout))

	tableData := pterm.TableData{{"Category", "Usage", "", "Spent", "Limit", "Remaining"}}
	for _, st := range ov.Statuses {
		level := st.Level(v.thresholds)
		usage := v.usage(st)
		tableData = append(tableData, []string{
			st.CategoryName,
			LevelColor(level, ProgressBar(st.PercentUsed, barWidth)),
			LevelColor(level, usage),
			v.format.Amount(st.Spent),
			v.format.Amount(st.Amount),
			signed(v.format, st.Remaining),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total limit %s, spent %s, remaining %s\n",
		v.format.Amount(ov.TotalAmount), v.format.Amount(ov.TotalSpent), v.format.Amount(ov.TotalRemaining))
	if ov.OverBudgetCount > 0 {
		pterm.Warning.Printf("%d budget(s) over the limit\n", ov.OverBudgetCount)
	}
	return nil
}

// usage is the percentage label of a budget card. A zero limit has no
// meaningful percentage, so its overage is shown as an amount.
func (v *BudgetView) usage(st aggregator.Status) string {
	switch {
	case !st.IsOverBudget:
		return v.format.Percent(st.Ratio)
	case st.Amount.IsZero():
		return "over by " + v.format.Amount(st.Remaining.Neg())
	default:
		return fmt.Sprintf("over by %s", v.format.Percent(st.OverPercent.Round(0)))
	}
}
