package views

import (
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/ui"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
)

type WalletSummaryItem struct {
	Name           string
	Type           string
	OpeningBalance string
}

func RenderWalletSummary(data WalletSummaryItem, f utils.Formatter) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Name"), data.Name},
		{pterm.Blue("Type"), data.Type},
		{pterm.Blue("Opening Balance"), f.AmountString(data.OpeningBalance)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderWalletSuccess(w *model.Wallet) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Wallet ID"), w.ID.String()},
		{pterm.Blue("Name"), w.Name},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Wallet created successfully!\n")

	return nil
}
