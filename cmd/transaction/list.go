package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Wallet string
	Limit  int
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent transactions, newest first.

This command displays a table of transactions with their date, type,
wallet, category, note and amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Wallet, "wallet", "w", "", "Filter transactions by wallet name")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListLimit, "Maximum number of transactions to display, 0 for all")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	limit := r.flags.Limit
	if r.flags.Wallet != "" {
		// filter first, then apply the limit
		limit = 0
	}

	transactions, err := r.svc.Transaction.ListTransactions(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	if r.flags.Wallet != "" {
		transactions = filterByWallet(transactions, r.flags.Wallet, r.flags.Limit)
		pterm.Info.Printf("Showing transactions for wallet: %s\n\n", r.flags.Wallet)
	}

	return views.NewTransactionListView(r.svc.Formatter()).Render(transactions, r.flags.Limit)
}

func filterByWallet(txns []service.TransactionDetail, wallet string, limit int) []service.TransactionDetail {
	var out []service.TransactionDetail
	for _, t := range txns {
		if !strings.EqualFold(t.WalletName, wallet) {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
