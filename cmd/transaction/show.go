package transaction

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}
}

func (r *ShowCommandRunner) Run(ctx context.Context, ref string) error {
	detail, err := r.svc.Transaction.FindTransaction(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	return views.RenderTransactionDetail(detail, r.svc.Formatter())
}
