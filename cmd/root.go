package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/kas/cmd/budget"
	"github.com/hance08/kas/cmd/category"
	"github.com/hance08/kas/cmd/transaction"
	"github.com/hance08/kas/cmd/wallet"
	"github.com/hance08/kas/internal/app"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/errhandler"
	"github.com/hance08/kas/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	parseGlobalFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		errhandler.HandleError(err)
	}

	if err := initSetup(); err != nil {
		errhandler.HandleError(err)
	}

	application, cleanup, err := app.NewApp(cfg, migrations, app.Options{Verbose: verbose})
	if err != nil {
		errhandler.HandleError(err)
	}

	rootCmd := &cobra.Command{
		Use:   "kas",
		Short: "kas is a CLI personal finance tracker",
		Long: `kas tracks wallets, income and expense transactions and monthly
category budgets, and turns them into dashboards and analytics.

It can work on its own or mirror a kas backend with 'kas sync'.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	svc := application.Service

	rootCmd.AddCommand(wallet.NewWalletCmd(svc))
	rootCmd.AddCommand(category.NewCategoryCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))
	rootCmd.AddCommand(budget.NewBudgetCmd(svc))

	rootCmd.AddCommand(NewAddCmd(svc))
	rootCmd.AddCommand(NewTxListCmd(svc))
	rootCmd.AddCommand(NewSummaryCmd(svc))
	rootCmd.AddCommand(NewAnalyticsCmd(svc))
	rootCmd.AddCommand(NewSyncCmd(svc))
	rootCmd.AddCommand(NewImportCmd(svc))
	rootCmd.AddCommand(NewExportCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))

	err = rootCmd.ExecuteContext(context.Background())
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
	}
}

// parseGlobalFlags reads --config and --verbose ahead of cobra, since the
// config file has to be loaded before the commands are built.
func parseGlobalFlags(args []string) {
	flags := pflag.NewFlagSet("kas", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	flags.StringVarP(&cfgFile, "config", "c", "", "")
	flags.BoolVarP(&verbose, "verbose", "v", false, "")
	flags.BoolP("help", "h", false, "")
	_ = flags.Parse(args)
}

func initConfig() error {
	if cfgFile != "" {
		path, err := expandPath(cfgFile)
		if err != nil {
			return err
		}
		viper.SetConfigFile(path)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("KAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	if cfg.Database.Path != "" {
		path, err := expandPath(cfg.Database.Path)
		if err != nil {
			return err
		}
		cfg.Database.Path = path
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// initSetup runs the first-run wizard when no currency has been chosen yet,
// and makes sure a user id exists.
func initSetup() error {
	changed := false

	if viper.GetString("defaults.currency") == "" {
		if !pterm.RawOutput && isTerminal() {
			setup, err := prompts.PromptInitSetup(cfg.Defaults.Currency)
			if err != nil {
				return err
			}
			cfg.Defaults.Currency = setup.Currency
			cfg.Defaults.NumberStyle = setup.NumberStyle
		}
		viper.Set("defaults.currency", cfg.Defaults.Currency)
		viper.Set("defaults.number_style", cfg.Defaults.NumberStyle)
		changed = true
	}

	if cfg.User.ID == "" {
		cfg.User.ID = uuid.NewString()
		viper.Set("user.id", cfg.User.ID)
		changed = true
	}

	if !changed || viper.ConfigFileUsed() == "" {
		return nil
	}
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", cfg.Defaults.Currency)
	return nil
}

func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// createDefaultConfig writes an empty config file on first run so the
// wizard has somewhere to save its answers.
func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
