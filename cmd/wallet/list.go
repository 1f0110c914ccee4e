package wallet

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Tree bool
	Type string
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all wallets with their balances",
		Long: `List all wallets with their current balances.
Use --tree to group them by type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&flags.Tree, "tree", false, "Group wallets by type")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Only show wallets of this type")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	view := views.NewWalletListView(r.svc.Formatter())

	if r.flags.Tree {
		groups, err := r.svc.Wallet.Tree(ctx)
		if err != nil {
			return fmt.Errorf("failed to get wallets: %w", err)
		}
		return view.RenderTree(groups)
	}

	wallets, err := r.svc.Wallet.ListWallets(ctx)
	if err != nil {
		return fmt.Errorf("failed to get wallets: %w", err)
	}

	if r.flags.Type != "" {
		filtered := wallets[:0:0]
		for _, w := range wallets {
			if w.Type == r.flags.Type {
				filtered = append(filtered, w)
			}
		}
		wallets = filtered
	}

	return view.Render(wallets)
}
