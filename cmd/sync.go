package cmd

import (
	"context"
	"fmt"

	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type syncRunner struct {
	svc   *service.Service
	limit int
	yes   bool
}

func NewSyncCmd(svc *service.Service) *cobra.Command {
	runner := &syncRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Replace the local ledger with the data on the backend",
		Long: `Download wallets, categories, transactions and budgets from the kas
backend configured under remote.base_url, and replace the local ledger
with them. The server's expense total is compared with the local one
afterwards.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&runner.limit, "limit", "l", constants.DefaultListLimit, "Number of transactions to download, 0 for the server default")
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *syncRunner) Run(ctx context.Context) error {
	if !r.yes {
		if err := confirmReplace(); err != nil {
			return err
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Syncing with " + r.svc.Config.Remote.BaseURL)
	res, err := r.svc.Sync.Sync(ctx, r.limit)
	if err != nil {
		spinner.Fail("Sync failed")
		return err
	}
	spinner.Success("Sync complete")

	return views.RenderSyncResult("Sync", res, r.svc.Formatter())
}

func NewImportCmd(svc *service.Service) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "import <file>",
		Short:        "Replace the local ledger with a snapshot file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if err := confirmReplace(); err != nil {
					return err
				}
			}
			res, err := svc.Sync.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return views.RenderSyncResult("Import", res, svc.Formatter())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func NewExportCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "export <file>",
		Short:        "Write the local ledger to a snapshot file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := svc.Sync.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			pterm.Success.Printf("Ledger exported to %s\n", args[0])
			return views.RenderSyncResult("Export", res, svc.Formatter())
		},
	}
}

func confirmReplace() error {
	confirm, err := ui.Confirm("This replaces every local wallet, category, transaction and budget. Continue?", false)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("cancelled, local ledger left unchanged")
	}
	return nil
}
