package transaction

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type DeleteCommandRunner struct {
	svc *service.Service
	yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	runner := &DeleteCommandRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and reverse its effect on the wallet balance. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *DeleteCommandRunner) Run(ctx context.Context, ref string) error {
	detail, err := r.svc.Transaction.FindTransaction(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	views.RenderTransactionDeletePreview(detail, r.svc.Formatter())

	if !r.yes {
		confirmation, err := ui.Confirm("Do you want to delete this transaction?", false)
		if err != nil {
			return err
		}

		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.DeleteTransaction(ctx, detail.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	views.RenderTransactionDeleteSuccess(detail)
	return nil
}
