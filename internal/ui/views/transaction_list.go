package views

import (
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	format utils.Formatter
}

func NewTransactionListView(f utils.Formatter) *TransactionListView {
	return &TransactionListView{format: f}
}

func (v *TransactionListView) Render(items []service.TransactionDetail, limit int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	if limit > 0 {
		pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)
	} else {
		pterm.DefaultSection.Printf("Showing all transactions")
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Wallet", "Category", "Note", "Amount"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			item.ShortID(),
			item.OccurredAt.Format(constants.DateFormat),
			KindColor(item.Kind, KindLabel(item.Kind)),
			item.WalletName,
			orDash(item.CategoryName),
			item.NoteText(),
			KindColor(item.Kind, v.format.AmountString(item.Amount)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
