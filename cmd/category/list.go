package category

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/hance08/kas/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Kind string
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories",
		Long: `List all categories. The default set is created the first time
the ledger has none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Only show income or expense categories")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	var categories []model.Category
	var err error

	if r.flags.Kind != "" {
		kind, perr := validation.ParseKind(r.flags.Kind)
		if perr != nil {
			return perr
		}
		categories, err = r.svc.Category.ByKind(ctx, kind)
	} else {
		categories, err = r.svc.Category.ListCategories(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	tableData := pterm.TableData{{"Name", "Kind"}}
	for _, c := range categories {
		tableData = append(tableData, []string{c.Name, views.KindColor(c.Kind, views.KindLabel(c.Kind))})
	}

	pterm.DefaultSection.Println("Categories")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d categories\n", len(categories))
	return nil
}
