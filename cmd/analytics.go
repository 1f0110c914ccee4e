package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/spf13/cobra"
)

type analyticsFlags struct {
	Months int
	JSON   bool
}

type analyticsRunner struct {
	svc   *service.Service
	flags *analyticsFlags
}

func NewAnalyticsCmd(svc *service.Service) *cobra.Command {
	flags := &analyticsFlags{}

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Expense breakdown, monthly trend and budget alerts",
		Long: `Show where the money goes: expense by category, income vs expense
per month, and budgets that are over or close to their limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &analyticsRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&flags.Months, "months", "m", 0, "Number of months in the trend (default from config)")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the analytics as JSON")

	return cmd
}

func (r *analyticsRunner) Run(ctx context.Context) error {
	a, err := r.svc.Analytics.Analytics(ctx, r.flags.Months)
	if err != nil {
		return fmt.Errorf("failed to build analytics: %w", err)
	}

	if r.flags.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	return views.NewAnalyticsView(r.svc.Formatter(), r.svc.Config.Thresholds()).Render(a)
}
