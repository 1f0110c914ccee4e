package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hance08/kas/internal/app"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and ledger size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run(cmd.Context())
		},
	}
}

func (r *infoRunner) Run(ctx context.Context) error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	appDir := getAppDataDirOrUnknown()
	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = filepath.Join(appDir, "kas.db")
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          dbPath,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		NumberStyle:     cfg.Defaults.NumberStyle,
		Timezone:        cfg.Location().String(),
		UserID:          cfg.User.ID,
		RemoteURL:       cfg.Remote.BaseURL,
		AppDataDir:      appDir,
	}

	wallets, err := r.svc.Wallet.ListWallets(ctx)
	if err != nil {
		return err
	}
	categories, err := r.svc.Category.ListCategories(ctx)
	if err != nil {
		return err
	}
	txns, err := r.svc.Transaction.ListTransactions(ctx, 0)
	if err != nil {
		return err
	}
	budgets, err := r.svc.Budget.ListBudgets(ctx)
	if err != nil {
		return err
	}
	items.Wallets, items.Categories, items.Transactions, items.Budgets = len(wallets), len(categories), len(txns), len(budgets)

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
