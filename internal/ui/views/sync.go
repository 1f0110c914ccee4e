package views

import (
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
)

// RenderSyncResult reports what a sync, import or export moved.
func RenderSyncResult(title string, res *service.SyncResult, f utils.Formatter) error {
	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"Wallets", "Categories", "Transactions", "Budgets", "Skipped", "Read as 0"},
		{
			pterm.Sprint(res.Wallets), pterm.Sprint(res.Categories),
			pterm.Sprint(res.Transactions), pterm.Sprint(res.Budgets),
			pterm.Sprint(len(res.Rejected)), pterm.Sprint(len(res.Recovered)),
		},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	for _, r := range res.Rejected {
		pterm.Warning.Println(r)
	}
	for _, r := range res.Recovered {
		pterm.Warning.Println(r)
	}

	if res.Checked {
		if res.Matches() {
			pterm.Success.Printf("Expense total matches the server (%s)\n", f.Amount(res.LocalExpense))
		} else {
			pterm.Warning.Printf("Expense total differs from the server: local %s, server %s\n",
				f.Amount(res.LocalExpense), f.Amount(res.RemoteExpense))
		}
	}
	return nil
}
