package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/log"
	"github.com/hance08/kas/internal/remote"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/snapshot"
	"github.com/hance08/kas/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *log.Logger
	Config  *config.Config
}

type Options struct {
	// Verbose forces debug logging regardless of log.level.
	Verbose bool
}

// NewApp opens the ledger database and wires the services. The returned
// cleanup closes the database.
func NewApp(cfg *config.Config, migrationFS fs.FS, opts Options) (*App, func(), error) {
	logger, err := newLogger(cfg, opts)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, err := DataDir()
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dbPath = filepath.Join(appDir, "kas.db")
	}

	kinds, err := snapshot.NewKindTable(cfg.Kinds.Income, cfg.Kinds.Expense)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid kind table: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.WithComponent(log.ComponentStore).Debug("database opened", "path", dbPath)

	svc := service.NewService(service.Deps{
		Repo:    dbStore,
		Config:  cfg,
		Logger:  logger,
		Fetcher: remote.NewClient(cfg.Remote.Timeout),
		Kinds:   kinds,
	})

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.WithComponent(log.ComponentStore).Error("closing database", log.FieldError, err.Error())
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger.WithComponent(log.ComponentApp),
		Config:  cfg,
	}, cleanup, nil
}

func newLogger(cfg *config.Config, opts Options) (*log.Logger, error) {
	lc := log.DefaultConfig()
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	lc.Level = level
	lc.JSON = cfg.Log.Format == "json"
	if opts.Verbose {
		lc.Level = pterm.LogLevelDebug
	}
	return log.New(lc), nil
}

// DataDir is where kas keeps its config file and default database.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".kas"), nil
	}

	return filepath.Join(configDir, "kas"), nil
}
