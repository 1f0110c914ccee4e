package cmd

import (
	"github.com/hance08/kas/cmd/transaction"
	"github.com/hance08/kas/internal/service"
	"github.com/spf13/cobra"
)

// NewTxListCmd is the top-level shortcut for 'transaction list'.
func NewTxListCmd(svc *service.Service) *cobra.Command {
	cmd := transaction.NewListCmd(svc)
	cmd.Use = "tx-list"
	cmd.Aliases = []string{"tls"}
	cmd.Short = "List recent transactions (alias: tls)"
	return cmd
}
