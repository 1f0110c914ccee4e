package prompts

import (
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/kas/internal/validation"
)

// PromptNote prompts for an optional free-text note, capped at maxLen runes
func PromptNote(message string, maxLen int) (string, error) {
	var note string

	err := huh.NewInput().
		Title(message).
		Description("Optional, press Enter to skip").
		CharLimit(maxLen).
		Value(&note).
		Run()

	return strings.TrimSpace(note), err
}

// PromptAmount reads a positive decimal amount. Thousands separators
// typed by the user are stripped before validation.
func PromptAmount(message string, helpText string) (string, error) {
	var amount string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount).
		Validate(func(s string) error {
			return validation.ValidateAmount(stripSeparators(s))
		}).
		Run()

	return stripSeparators(amount), err
}

func stripSeparators(s string) string {
	return strings.NewReplacer(",", "", "_", "", " ", "").Replace(strings.TrimSpace(s))
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format
func PromptDate(message string, defaultDate string, helpText string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return validation.ValidateDate(s)
		}).
		Run()

	if err != nil {
		return "", err
	}

	if strings.TrimSpace(date) == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptInput prompts for a line of text. An empty answer returns
// defaultValue, and the validator sees that default rather than "".
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Placeholder(defaultValue).
		Value(&inputVal)

	if validator != nil {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				s = defaultValue
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if strings.TrimSpace(inputVal) == "" {
		return defaultValue, nil
	}
	return strings.TrimSpace(inputVal), nil
}

// PromptSelect prompts for one of options. defaultOption is preselected
// when present.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := ""
	if slices.Contains(options, defaultOption) {
		selected = defaultOption
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(huh.NewOptions(options...)...).
		Value(&selected).
		Run()

	return selected, err
}
