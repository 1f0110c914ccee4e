package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

// NameValidator returns a validator for wallet and category names. what is
// used in messages, e.g. "wallet name".
func NameValidator(what string) func(string) error {
	return func(name string) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%s can't be empty", what)
		}
		if len(name) > constants.MaxNameLen {
			return fmt.Errorf("%s too long (max %d characters)", what, constants.MaxNameLen)
		}
		return nil
	}
}

// ParseAmount validates a user-entered amount and returns it as a decimal.
// Amounts must be positive plain decimals; thousands separators and
// exponent notation are not accepted.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount can't be empty")
	}

	d, err := model.ParseDecimal(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number format: %q", input)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	if d.GreaterThan(decimal.RequireFromString(constants.MaxAmount)) {
		return decimal.Zero, fmt.Errorf("amount too large")
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("amount has more than 2 decimal places")
	}
	return d, nil
}

func ValidateAmount(input string) error {
	_, err := ParseAmount(input)
	return err
}

// ValidateInitialBalance accepts zero and empty input, unlike ValidateAmount.
func ValidateInitialBalance(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || input == "0" {
		return nil
	}
	d, err := model.ParseDecimal(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if d.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	if d.GreaterThan(decimal.RequireFromString(constants.MaxAmount)) {
		return fmt.Errorf("balance amount too large")
	}
	return nil
}

// ValidateCurrency validates a currency code format. Empty is allowed and
// means the configured default.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))
	if currency == "" {
		return nil
	}

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. IDR)")
	}
	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date in loc. Empty input means now.
func ParseDate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", input)
	}
	return t, nil
}

func ValidateDate(input string) error {
	_, err := ParseDate(input, time.UTC)
	return err
}

func ValidateWalletType(t string) error {
	t = strings.ToLower(strings.TrimSpace(t))
	for _, known := range constants.WalletTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("unknown wallet type %q (one of %s)", t, strings.Join(constants.WalletTypes, ", "))
}

// ParseKind accepts the command-line spellings of a transaction kind.
func ParseKind(s string) (model.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constants.ModeIncome, model.TokenIncome:
		return model.KindIncome, nil
	case constants.ModeExpense, model.TokenExpense:
		return model.KindExpense, nil
	default:
		return model.KindUnknown, fmt.Errorf("unknown kind %q, use income or expense", s)
	}
}
