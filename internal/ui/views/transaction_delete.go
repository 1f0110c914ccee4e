package views

import (
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(d *service.TransactionDetail, f utils.Formatter) {
	pterm.Warning.Printf("About to delete transaction %s:\n", d.ShortID())

	deletionInfo := pterm.TableData{
		{"Date", d.OccurredAt.Format(constants.DateFormat)},
		{"Type", KindLabel(d.Kind)},
		{"Wallet", d.WalletName},
		{"Amount", f.AmountString(d.Amount)},
		{"Note", orDash(d.NoteText())},
	}

	_ = pterm.DefaultTable.WithData(deletionInfo).Render()
	pterm.Warning.Println("The wallet balance will be adjusted. This action cannot be undone!")
}

func RenderTransactionDeleteSuccess(d *service.TransactionDetail) {
	pterm.Success.Printf("Transaction %s deleted successfully\n", d.ShortID())
	ui.Separator()
}
