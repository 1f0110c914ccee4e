package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/kas/internal/config"
)

func TestNewAppOpensLedger(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "kas.db")
	cfg.Log.Level = "off"

	a, cleanup, err := NewApp(cfg, os.DirFS("../.."), Options{})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer cleanup()

	wallets, err := a.Service.Wallet.ListWallets(context.Background())
	if err != nil {
		t.Fatalf("ListWallets: %v", err)
	}
	if len(wallets) != 0 {
		t.Fatalf("fresh ledger has %d wallets", len(wallets))
	}
}

func TestNewAppRejectsBadLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "kas.db")
	cfg.Log.Level = "loud"

	if _, _, err := NewApp(cfg, os.DirFS("../.."), Options{}); err == nil {
		t.Fatal("expected an error")
	}
}
