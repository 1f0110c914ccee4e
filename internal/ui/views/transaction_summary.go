package views

import (
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransactionSummary shows what is about to be recorded.
func RenderTransactionSummary(input service.TransactionInput, f utils.Formatter) {
	pterm.DefaultSection.Println("Transaction Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", input.OccurredAt.Format(constants.DateFormat)},
		{"Type", KindColor(input.Kind, KindLabel(input.Kind))},
		{"Wallet", input.WalletName},
		{"Category", orDash(input.CategoryName)},
		{"Amount", f.AmountString(input.Amount)},
		{"Note", orDash(input.Note)},
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
