package category

import (
	"fmt"
	"strings"

	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCreateCmd(svc *service.Service) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category",
		Long: `Create an income or expense category.

Example: kas category create Kopi --kind expense`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := validation.ParseKind(kind)
			if err != nil {
				return err
			}
			c, err := svc.Category.CreateCategory(cmd.Context(), args[0], k)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}
			pterm.Success.Printf("Category '%s' (%s) created\n", c.Name, strings.ToLower(c.Kind.String()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "Category kind: income or expense")

	return cmd
}
