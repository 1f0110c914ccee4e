package budget

import (
	"github.com/hance08/kas/internal/service"
	"github.com/spf13/cobra"
)

func NewBudgetCmd(svc *service.Service) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Set monthly limits per expense category and track them.",
		Long: `Set monthly limits per expense category and track them.

Spending is counted from expense transactions in the current calendar
month.`,
	}

	budgetCmd.AddCommand(NewSetCmd(svc))
	budgetCmd.AddCommand(NewListCmd(svc))

	return budgetCmd
}
