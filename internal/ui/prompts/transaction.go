package prompts

import (
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/model"
)

const noCategory = "(none)"

// PromptTransactionKind prompts for income or expense
func PromptTransactionKind() (model.Kind, error) {
	kind := model.KindExpense

	err := huh.NewSelect[model.Kind]().
		Title("Choose the transaction type:").
		Options(
			huh.NewOption("Record Expense", model.KindExpense),
			huh.NewOption("Record Income", model.KindIncome),
		).
		Value(&kind).
		Run()

	return kind, err
}

// PromptCategorySelection returns "" when the user picks no category.
func PromptCategorySelection(categories []model.Category, message string) (string, error) {
	opts := []huh.Option[string]{huh.NewOption(noCategory, "")}
	for _, c := range categories {
		opts = append(opts, huh.NewOption(c.Name, c.Name))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(12).
		Run()

	return selected, err
}

// PromptTransactionDate prompts for transaction date
func PromptTransactionDate(loc *time.Location) (string, error) {
	defaultDate := time.Now().In(loc).Format(constants.DateFormat)
	return PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		defaultDate,
		"Press Enter for today",
	)
}
