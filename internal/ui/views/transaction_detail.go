package views

import (
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(detail *service.TransactionDetail, f utils.Formatter) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", detail.ID.String()},
		{"Date", detail.OccurredAt.Format(constants.DateFormat)},
		{"Type", KindColor(detail.Kind, KindLabel(detail.Kind))},
		{"Wallet", detail.WalletName},
		{"Category", orDash(detail.CategoryName)},
		{"Amount", KindColor(detail.Kind, f.AmountString(detail.Amount))},
		{"Note", orDash(detail.NoteText())},
		{"Recorded", detail.CreatedAt.Local().Format("2006-01-02 15:04")},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
