package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/store"
	"github.com/hance08/kas/internal/validation"
	"github.com/shopspring/decimal"
)

type WalletService struct {
	repo   store.Repository
	config *config.Config
}

func NewWalletService(repo store.Repository, cfg *config.Config) *WalletService {
	return &WalletService{repo: repo, config: cfg}
}

type WalletInput struct {
	Name           string
	Type           string
	OpeningBalance string
}

// WalletGroup is one branch of the wallet tree.
type WalletGroup struct {
	Type    string
	Wallets []model.Wallet
	Total   decimal.Decimal
}

func (ws *WalletService) CreateWallet(ctx context.Context, in WalletInput) (*model.Wallet, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.NameValidator("wallet name")(name); err != nil {
		return nil, err
	}
	walletType := strings.ToLower(strings.TrimSpace(in.Type))
	if err := validation.ValidateWalletType(walletType); err != nil {
		return nil, err
	}
	if err := validation.ValidateInitialBalance(in.OpeningBalance); err != nil {
		return nil, err
	}

	if _, err := ws.repo.GetWalletByName(ctx, name); err == nil {
		return nil, fmt.Errorf("wallet '%s': %w", name, ErrWalletExists)
	} else if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	w := model.Wallet{
		ID:        uuid.New(),
		UserID:    ws.config.UserID(),
		Type:      walletType,
		Name:      name,
		Balance:   aggregator.ParseAmount(in.OpeningBalance).String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := ws.repo.CreateWallet(ctx, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (ws *WalletService) ListWallets(ctx context.Context) ([]model.Wallet, error) {
	return ws.repo.ListWallets(ctx)
}

func (ws *WalletService) GetWalletByName(ctx context.Context, name string) (*model.Wallet, error) {
	return ws.repo.GetWalletByName(ctx, strings.TrimSpace(name))
}

// Tree groups wallets by type, types and names sorted.
func (ws *WalletService) Tree(ctx context.Context) ([]WalletGroup, error) {
	wallets, err := ws.repo.ListWallets(ctx)
	if err != nil {
		return nil, err
	}
	return groupWallets(wallets), nil
}

func groupWallets(wallets []model.Wallet) []WalletGroup {
	byType := make(map[string][]model.Wallet)
	for _, w := range wallets {
		byType[w.Type] = append(byType[w.Type], w)
	}

	groups := make([]WalletGroup, 0, len(byType))
	for t, ws := range byType {
		sort.Slice(ws, func(i, j int) bool { return ws[i].Name < ws[j].Name })
		groups = append(groups, WalletGroup{Type: t, Wallets: ws, Total: aggregator.TotalBalance(ws)})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Type < groups[j].Type })
	return groups
}
