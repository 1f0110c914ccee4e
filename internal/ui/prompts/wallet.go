package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/model"
)

// PromptWalletType prompts for one of the known wallet types
func PromptWalletType() (string, error) {
	selected, err := PromptSelect("Wallet Type:", constants.WalletTypes, constants.WalletTypes[0])
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptWalletName prompts for wallet name with validation
func PromptWalletName(validator func(string) error) (string, error) {
	return PromptInput("Wallet Name:", "", validator)
}

// PromptOpeningBalance prompts for the opening balance with validation
func PromptOpeningBalance(validator func(string) error) (string, error) {
	return PromptInput("Opening Balance (press Enter for 0):", "0", validator)
}

// PromptWalletSelection lets the user pick a wallet, showing its balance
// through format when given.
func PromptWalletSelection(wallets []model.Wallet, message string, format func(string) string) (string, error) {
	if len(wallets) == 0 {
		return "", fmt.Errorf("no wallets yet, create one with 'kas wallet create'")
	}

	var opts []huh.Option[string]
	for _, w := range wallets {
		display := w.Name
		if format != nil {
			display = fmt.Sprintf("%s (%s)", w.Name, format(w.Balance))
		}
		opts = append(opts, huh.NewOption(display, w.Name))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(selected), nil
}
