package views

import (
	"fmt"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderDashboard prints the four summary cards followed by the most
// recent transactions.
func RenderDashboard(d *service.Dashboard, f utils.Formatter) error {
	net := f.Amount(d.Net)
	if d.Net.IsNegative() {
		net = pterm.Red(net)
	} else {
		net = pterm.Green(net)
	}

	cards := pterm.Panels{{
		{Data: card("Total Balance", f.Amount(d.TotalBalance), fmt.Sprintf("%d wallets", d.WalletCount))},
		{Data: card("Income", pterm.Green(f.Amount(d.Income)), "all time")},
		{Data: card("Expense", pterm.Red(f.Amount(d.Expense)), "all time")},
		{Data: card("Net", net, "income - expense")},
	}}

	pterm.DefaultSection.Println("Summary")
	if err := pterm.DefaultPanel.WithPanels(cards).WithPadding(2).Render(); err != nil {
		return err
	}

	if len(d.Recent) == 0 {
		return nil
	}
	return NewTransactionListView(f).Render(d.Recent, len(d.Recent))
}

func card(title, value, hint string) string {
	return pterm.DefaultBox.
		WithTitle(pterm.Bold.Sprint(title)).
		Sprint(value + "\n" + pterm.Gray(hint))
}

func signed(f utils.Formatter, d decimal.Decimal) string {
	if d.IsNegative() {
		return pterm.Red(f.Amount(d))
	}
	return f.Amount(d)
}
