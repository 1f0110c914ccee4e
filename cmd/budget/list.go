package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	svc  *service.Service
	json bool
}

func NewListCmd(svc *service.Service) *cobra.Command {
	runner := &listRunner{svc: svc}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show budget usage for the current month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&runner.json, "json", false, "Print the budget overview as JSON")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	ov, err := r.svc.Budget.Overview(ctx)
	if err != nil {
		return fmt.Errorf("failed to get budgets: %w", err)
	}

	if r.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ov)
	}

	from, _ := r.svc.Budget.CurrentPeriod()
	return views.NewBudgetView(r.svc.Formatter(), r.svc.Config.Thresholds()).Render(ov, from)
}
