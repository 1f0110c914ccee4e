package views

import (
	"fmt"

	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type WalletListView struct {
	format utils.Formatter
}

func NewWalletListView(f utils.Formatter) *WalletListView {
	return &WalletListView{format: f}
}

func (v *WalletListView) Render(wallets []model.Wallet) error {
	if len(wallets) == 0 {
		pterm.Warning.Println("No wallets yet, create one with 'kas wallet create'")
		return nil
	}

	tableData := pterm.TableData{{"Name", "Type", "Balance"}}
	for _, w := range wallets {
		tableData = append(tableData, []string{w.Name, w.Type, v.balance(aggregator.ParseAmount(w.Balance))})
	}

	pterm.DefaultSection.Printf("Wallet List")
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d wallets, %s\n", len(wallets), v.format.Amount(aggregator.TotalBalance(wallets)))

	return nil
}

// RenderTree shows wallets grouped by type.
func (v *WalletListView) RenderTree(groups []service.WalletGroup) error {
	if len(groups) == 0 {
		pterm.Warning.Println("No wallets yet, create one with 'kas wallet create'")
		return nil
	}

	total := decimal.Zero
	root := pterm.TreeNode{}
	for _, g := range groups {
		node := pterm.TreeNode{Text: fmt.Sprintf("%s  %s", pterm.Bold.Sprint(g.Type), v.balance(g.Total))}
		for _, w := range g.Wallets {
			node.Children = append(node.Children, pterm.TreeNode{
				Text: fmt.Sprintf("%s  %s", w.Name, v.balance(aggregator.ParseAmount(w.Balance))),
			})
		}
		root.Children = append(root.Children, node)
		total = total.Add(g.Total)
	}
	root.Text = fmt.Sprintf("Wallets  %s", v.balance(total))

	return pterm.DefaultTree.WithRoot(root).Render()
}

func (v *WalletListView) balance(d decimal.Decimal) string {
	s := v.format.Amount(d)
	if d.IsNegative() {
		return pterm.Red(s)
	}
	return s
}
