package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/kas/internal/config"
	"github.com/hance08/kas/internal/validation"
)

// Setup is what the first-run wizard collects.
type Setup struct {
	Currency    string
	NumberStyle string
}

// PromptInitSetup runs the first-run wizard.
func PromptInitSetup(currDefault string) (Setup, error) {
	setup := Setup{Currency: currDefault, NumberStyle: config.NumberStyleID}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Welcome to kas! Please set the default currency:").
				Description("Amounts are shown in this currency.").
				Options(
					huh.NewOption("IDR", "IDR"),
					huh.NewOption("USD", "USD"),
					huh.NewOption("SGD", "SGD"),
					huh.NewOption("MYR", "MYR"),
					huh.NewOption("EUR", "EUR"),
					huh.NewOption("Other", "Other"),
				).
				Value(&setup.Currency),
			huh.NewSelect[string]().
				Title("Number style:").
				Options(
					huh.NewOption("1.234.567,89", config.NumberStyleID),
					huh.NewOption("1,234,567.89", config.NumberStyleEN),
				).
				Value(&setup.NumberStyle),
		),
	).Run()
	if err != nil {
		return Setup{}, err
	}

	if setup.Currency == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("currency code is required")
				}
				return validation.ValidateCurrency(strings.ToUpper(strings.TrimSpace(s)))
			}).
			Run()
		if err != nil {
			return Setup{}, err
		}
		setup.Currency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return setup, nil
}
