package service

import (
	"fmt"
	"strings"

	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/validation"
	"github.com/shopspring/decimal"
)

// validateInput checks the parts of in that do not need the store and
// returns the parsed amount.
func validateInput(in TransactionInput) (decimal.Decimal, error) {
	if !in.Kind.Valid() {
		return decimal.Zero, fmt.Errorf("transaction kind must be income or expense")
	}
	if strings.TrimSpace(in.WalletName) == "" {
		return decimal.Zero, fmt.Errorf("wallet is required")
	}
	amount, err := validation.ParseAmount(in.Amount)
	if err != nil {
		return decimal.Zero, err
	}
	if in.OccurredAt.IsZero() {
		return decimal.Zero, fmt.Errorf("transaction date is required")
	}
	return amount, nil
}

// checkCategoryKind rejects an income transaction filed under an expense
// category and vice versa. Categories of unknown kind accept either.
func checkCategoryKind(c *model.Category, kind model.Kind) error {
	if c == nil || !c.Kind.Valid() || c.Kind == kind {
		return nil
	}
	return fmt.Errorf("'%s' is an %s category: %w", c.Name, strings.ToLower(c.Kind.String()), ErrCategoryKindMismatch)
}

// balanceDelta is the signed effect of a transaction on its wallet.
func balanceDelta(kind model.Kind, amount decimal.Decimal) decimal.Decimal {
	if kind == model.KindExpense {
		return amount.Neg()
	}
	return amount
}
