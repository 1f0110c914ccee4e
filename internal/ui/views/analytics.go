package views

import (
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/ui"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AnalyticsView struct {
	format     utils.Formatter
	thresholds aggregator.Thresholds
}

func NewAnalyticsView(f utils.Formatter, th aggregator.Thresholds) *AnalyticsView {
	return &AnalyticsView{format: f, thresholds: th}
}

func (v *AnalyticsView) Render(a aggregator.Analytics) error {
	ui.PrintL1Title("Analytics")
	ui.Separator()

	top := "-"
	if a.TopCategory != nil {
		top = a.TopCategory.Name + " (" + v.format.Percent(a.TopCategory.Percent) + ")"
	}
	pterm.Info.Printf("Total expense %s, top category %s\n", v.format.Amount(a.TotalExpense), top)

	if err := v.renderBreakdown(a.Breakdown); err != nil {
		return err
	}
	if err := v.renderMonthly(a.Monthly); err != nil {
		return err
	}

	if len(a.OverBudget) > 0 {
		ui.Separator()
		ui.PrintL2Title("Alerts")
		for _, st := range a.OverBudget {
			pterm.Error.Printf("%s is over budget by %s (%s of %s)\n",
				st.CategoryName, v.format.Percent(st.OverPercent.Round(0)),
				v.format.Amount(st.Spent), v.format.Amount(st.Amount))
		}
	}
	for _, st := range a.Budgets {
		if !st.IsOverBudget && st.Level(v.thresholds) != aggregator.LevelOK {
			pterm.Warning.Printf("%s has used %s of its budget\n", st.CategoryName, v.format.Percent(st.Ratio))
		}
	}
	return nil
}

func (v *AnalyticsView) renderBreakdown(shares []aggregator.CategoryShare) error {
	ui.Separator()
	ui.PrintL2Title("Expense by Category")

	if len(shares) == 0 {
		pterm.Warning.Println("No expense categories yet")
		return nil
	}

	tableData := pterm.TableData{{"Category", "Amount", "Share"}}
	var bars pterm.Bars
	for _, s := range shares {
		tableData = append(tableData, []string{s.Name, v.format.Amount(s.Amount), v.format.Percent(s.Percent)})
		if s.Amount.IsPositive() {
			bars = append(bars, pterm.Bar{Label: s.Name, Value: chartValue(s.Amount)})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	if len(bars) == 0 {
		return nil
	}
	return pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithWidth(40).Render()
}

func (v *AnalyticsView) renderMonthly(points []aggregator.MonthlyPoint) error {
	ui.Separator()
	ui.PrintL2Title("Monthly Income vs Expense")

	if len(points) == 0 {
		pterm.Warning.Println("No transactions yet")
		return nil
	}

	tableData := pterm.TableData{{"Month", "Income", "Expense", "Net", ""}}
	for _, p := range points {
		tableData = append(tableData, []string{
			p.Label,
			pterm.Green(v.format.Amount(p.Income)),
			pterm.Red(v.format.Amount(p.Expense)),
			signed(v.format, p.Net),
			pterm.Gray(utils.Compact(p.Expense)),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// chartValue rounds an amount to the int the bar chart takes.
func chartValue(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
