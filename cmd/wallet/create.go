package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/prompts"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/hance08/kas/internal/validation"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name    string
	Type    string
	Balance string
}

type CreateCommandRunner struct {
	svc   *service.Service
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new wallet.",
		Long: `Create a new wallet with an optional opening balance.

Example: kas wallet create -n BCA -t bank -b 1500000`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{svc: svc, flags: flags, cmd: cmd}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Wallet name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "cash", "Wallet type: cash, bank, e-wallet, credit, investment")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Opening balance")

	return cmd
}

func (r *CreateCommandRunner) Run(ctx context.Context) error {
	var input service.WalletInput
	var err error

	if r.cmd.Flags().Changed("name") {
		input = service.WalletInput{Name: r.flags.Name, Type: r.flags.Type, OpeningBalance: r.flags.Balance}
	} else {
		input, err = r.interactiveMode()
		if err != nil {
			return err
		}
	}

	f := r.svc.Formatter()
	if err := views.RenderWalletSummary(views.WalletSummaryItem{
		Name: input.Name, Type: input.Type, OpeningBalance: input.OpeningBalance,
	}, f); err != nil {
		return err
	}

	if !r.cmd.Flags().Changed("name") {
		confirm, err := prompts.PromptConfirm("Proceed with wallet creation?", true)
		if err != nil {
			return err
		}
		if !confirm {
			return fmt.Errorf("wallet creation cancelled")
		}
	}

	w, err := r.svc.Wallet.CreateWallet(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	return views.RenderWalletSuccess(w)
}

func (r *CreateCommandRunner) interactiveMode() (service.WalletInput, error) {
	walletType, err := prompts.PromptWalletType()
	if err != nil {
		return service.WalletInput{}, err
	}

	name, err := prompts.PromptWalletName(validation.NameValidator("wallet name"))
	if err != nil {
		return service.WalletInput{}, err
	}

	balance, err := prompts.PromptOpeningBalance(validation.ValidateInitialBalance)
	if err != nil {
		return service.WalletInput{}, err
	}

	return service.WalletInput{
		Name:           strings.TrimSpace(name),
		Type:           walletType,
		OpeningBalance: strings.TrimSpace(balance),
	}, nil
}
