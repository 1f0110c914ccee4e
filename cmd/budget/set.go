package budget

import (
	"fmt"

	"github.com/hance08/kas/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewSetCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set or replace the monthly limit of a category",
		Long: `Set or replace the monthly limit of an expense category.

Example: kas budget set Makan 1500000`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := svc.Budget.SetBudget(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}
			pterm.Success.Printf("Budget for %s set to %s per month\n", b.CategoryName, svc.Formatter().AmountString(b.Amount))
			return nil
		},
	}
}
