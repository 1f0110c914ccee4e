package wallet

import (
	"github.com/hance08/kas/internal/service"
	"github.com/spf13/cobra"
)

func NewWalletCmd(svc *service.Service) *cobra.Command {
	walletCmd := &cobra.Command{
		Use:     "wallet",
		Aliases: []string{"w"},
		Short:   "Create wallets and show their balances.",
		Long:    `Create wallets (cash, bank, e-wallet, ...) and show their balances.`,
	}

	walletCmd.AddCommand(NewCreateCmd(svc))
	walletCmd.AddCommand(NewListCmd(svc))

	return walletCmd
}
