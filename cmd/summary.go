package cmd

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/spf13/cobra"
)

type summaryRunner struct {
	svc    *service.Service
	recent int
}

func NewSummaryCmd(svc *service.Service) *cobra.Command {
	runner := &summaryRunner{svc: svc}

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"dash"},
		Short:   "Show total balance, income, expense and recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&runner.recent, "recent", "r", 5, "Number of recent transactions to show")

	return cmd
}

func (r *summaryRunner) Run(ctx context.Context) error {
	dash, err := r.svc.Analytics.Dashboard(ctx, r.recent)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}
	return views.RenderDashboard(dash, r.svc.Formatter())
}
