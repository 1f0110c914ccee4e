package category

import (
	"github.com/hance08/kas/internal/service"
	"github.com/spf13/cobra"
)

func NewCategoryCmd(svc *service.Service) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "List and create income and expense categories.",
	}

	categoryCmd.AddCommand(NewListCmd(svc))
	categoryCmd.AddCommand(NewCreateCmd(svc))

	return categoryCmd
}
