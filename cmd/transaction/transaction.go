package transaction

import (
	"github.com/hance08/kas/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long: `Manage transactions: list, view details or delete.

Transactions are referred to by the short id shown in lists, or by the
full id.`,
	}

	transactionCmd.AddCommand(NewListCmd(svc))
	transactionCmd.AddCommand(NewShowCmd(svc))
	transactionCmd.AddCommand(NewDeleteCmd(svc))

	return transactionCmd
}
